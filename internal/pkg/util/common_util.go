package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var tagRegex = regexp.MustCompile(`#(\S+)`)

// ExtractTags 从正文提取去重后的标签列表，已做规范化
func ExtractTags(rawContent string) []string {
	matches := tagRegex.FindAllStringSubmatch(rawContent, -1)

	tagSet := make(map[string]struct{})
	var tags []string

	for _, m := range matches {
		if len(m) > 1 {
			tagName := NormalizeTag(m[1])
			if tagName == "" {
				continue
			}
			if _, exists := tagSet[tagName]; !exists {
				tagSet[tagName] = struct{}{}
				tags = append(tags, tagName)
			}
		}
	}

	return tags
}

// NormalizeTag 标签统一小写并去掉首尾标点，保证大小写不敏感的唯一性
func NormalizeTag(raw string) string {
	tag := strings.Trim(raw, ".,，。!?！？#")
	return strings.ToLower(tag)
}

// TruncToHour 按小时取整，快照幂等的关键
func TruncToHour(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}

// StrToUint64 宽松解析，解析失败返回 0
func StrToUint64(s string) uint64 {
	v, _ := strconv.ParseUint(s, 10, 64)
	return v
}
