package kafka

import (
	"fmt"
	"strconv"
	"time"
)

// Canal 把所有列值序列化成字符串，这里统一做回转换。
// 转换失败一律回落零值，脏数据不该打断消费

func StrToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func StrToUint64(v interface{}) uint64 {
	n, err := strconv.ParseUint(StrToString(v), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func StrToInt(v interface{}) int {
	n, err := strconv.Atoi(StrToString(v))
	if err != nil {
		return 0
	}
	return n
}

func StrToBool(v interface{}) bool {
	return StrToString(v) == "1" || StrToString(v) == "true"
}

func StrToDateTime(v interface{}) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", StrToString(v), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
