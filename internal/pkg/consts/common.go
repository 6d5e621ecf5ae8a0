package consts

const (
	MimePrefixImage = "image"
)

// 帖子生命周期状态
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

const (
	// DefaultHashtag 保存时未填写任何话题标签的兜底值
	DefaultHashtag = "#cafex"
	// DefaultInstagramLink 未关联原帖时的占位链接
	DefaultInstagramLink = "#"
)
