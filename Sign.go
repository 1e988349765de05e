package okcoinex

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// BuildCanonicalParams serializes the params into the exact string the
// signature is computed over: keys in ascending byte order, each pair
// joined as key=value with &, no escaping. The server rebuilds the same
// string, so this must stay bit-exact.
func BuildCanonicalParams(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}
	return strings.Join(pairs, "&")
}

// GetParamMD5Sign signs the canonical params with the api secret and
// returns the uppercase hex digest.
func GetParamMD5Sign(secret, params string) (string, error) {
	hash := md5.New()
	if _, err := hash.Write([]byte(params + "&secret_key=" + secret)); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(hash.Sum(nil))), nil
}
