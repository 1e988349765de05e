package okcoinex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func ToFloat64(v interface{}) float64 {
	if v == nil {
		return 0.0
	}

	switch v.(type) {
	case float64:
		return v.(float64)
	case string:
		vStr := v.(string)
		vF, _ := strconv.ParseFloat(vStr, 64)
		return vF
	default:
		panic("to float64 error.")
	}
}

func ToInt(v interface{}) int {
	if v == nil {
		return 0
	}

	switch v.(type) {
	case string:
		vStr := v.(string)
		vInt, _ := strconv.Atoi(vStr)
		return vInt
	case int:
		return v.(int)
	case float64:
		vF := v.(float64)
		return int(vF)
	default:
		panic("to int error.")
	}
}

func ToInt64(v interface{}) int64 {
	if v == nil {
		return 0
	}

	switch v.(type) {
	case float64:
		return int64(v.(float64))
	default:
		vv := fmt.Sprint(v)

		if vv == "" {
			return 0
		}

		vvv, err := strconv.ParseInt(vv, 0, 64)
		if err != nil {
			return 0
		}

		return vvv
	}
}

// FloatToString n :保留的小数点位数,去除末尾多余的0(StripTrailingZeros)
func FloatToString(v float64, n int64) string {
	theN := int(n)
	ret := strconv.FormatFloat(v, 'f', theN, 64)
	return strconv.FormatFloat(ToFloat64(ret), 'f', -1, 64) //StripTrailingZeros
}

func UUID() string {
	return strings.Replace(uuid.New().String(), "-", "", 32)
}
