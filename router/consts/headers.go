package consts

const (
	HeaderCacheControl = "Cache-Control"
	HeaderVersion      = "X-TRAQ-MODERATION-VERSION"
)
