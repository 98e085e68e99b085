package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUserID     = "Invalid user ID"
	ErrMsgInvalidActivityID = "Invalid activity ID"
	ErrMsgInvalidChanceID   = "Invalid chance ID"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgChanceGranted = "Chance granted"
	MsgOrderPlaced   = "Prize claim placed successfully"
)
