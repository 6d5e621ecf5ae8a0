package model

import "strings"

// ImageKind 图片引用类型
type ImageKind int8

const (
	ImageKindNone ImageKind = iota
	// ImageKindExternal 站外图片，按原样使用的完整 URL
	ImageKindExternal
	// ImageKindInternal 桶内对象路径，展示时再解析为公开 URL
	ImageKindInternal
)

// ImageRef 帖子的图片引用，外链和桶内路径二者只能取其一
type ImageRef struct {
	Kind  ImageKind `json:"kind"`
	Value string    `json:"value"`
}

// ParseImageRef 在入口处做一次前缀判定，之后全程携带类型标签
func ParseImageRef(s string) ImageRef {
	if s == "" {
		return ImageRef{Kind: ImageKindNone}
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return ImageRef{Kind: ImageKindExternal, Value: s}
	}
	return ImageRef{Kind: ImageKindInternal, Value: s}
}

func (s ImageRef) IsExternal() bool {
	return s.Kind == ImageKindExternal
}

func (s ImageRef) IsInternal() bool {
	return s.Kind == ImageKindInternal
}

func (s ImageRef) IsEmpty() bool {
	return s.Kind == ImageKindNone
}
