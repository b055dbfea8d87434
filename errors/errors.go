package errors

import "fmt"

var (
	ErrWorkerPanic             = fmt.Errorf("worker panic")
	ErrConfigMissing           = fmt.Errorf("component configuration missing")
	ErrConfigInvalid           = fmt.Errorf("component configuration invalid")
	ErrLookupFailed            = fmt.Errorf("entity lookup failed")
	ErrNoChatID                = fmt.Errorf("user has no chat id")
	ErrConversationNotCached   = fmt.Errorf("no cached conversation")
	ErrConversationUnavailable = fmt.Errorf("conversation unavailable")
)
