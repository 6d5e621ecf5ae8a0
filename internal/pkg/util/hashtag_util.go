package util

import (
	"CafeX/internal/pkg/consts"
	"strings"
)

// NormalizeHashtags 去重、补全 # 前缀；结果为空时回落到默认标签。
// 这是保存时的归一化，读路径不再处理
func NormalizeHashtags(tags []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "#" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		if _, exists := seen[tag]; exists {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	if len(out) == 0 {
		return []string{consts.DefaultHashtag}
	}
	return out
}
