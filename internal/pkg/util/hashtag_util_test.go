package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHashtags(t *testing.T) {
	assert.Equal(t, []string{"#coffee", "#latte"}, NormalizeHashtags([]string{"coffee", "#latte"}))

	// 去重在补前缀之后进行
	assert.Equal(t, []string{"#coffee"}, NormalizeHashtags([]string{"coffee", "#coffee", " coffee "}))

	// 空白和孤立 # 被丢弃
	assert.Equal(t, []string{"#menu"}, NormalizeHashtags([]string{"", "  ", "#", "menu"}))

	// 结果为空时回落到默认标签
	assert.Equal(t, []string{"#cafex"}, NormalizeHashtags(nil))
	assert.Equal(t, []string{"#cafex"}, NormalizeHashtags([]string{"", "#"}))
}
