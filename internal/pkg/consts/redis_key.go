package consts

const (
	PostPublicFeedKey   = "post:feed:public"
	PostFeaturedFeedKey = "post:feed:featured"
)

const (
	PublishSweepLock = "lock:post:publish:sweep"
)
