package constants

// Context and cookie keys
const (
	ContextKeyUserID = "user_id"
	AccessTokenCookie = "access_token"
)

// Password policy
const MinPasswordLength = 6

// Pagination defaults: offset/limit with a hard cap on limit
const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 100
)
