package common

const (
	// MaxRequestBody limits JSON request bodies for park/review endpoints.
	MaxRequestBody = 1 << 20
	// MsgInternalError is sent whenever the failure is not caused by the request.
	MsgInternalError = "Internal server error"
)
