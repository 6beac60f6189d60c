package types

const (
	ContextOperatorKey  = "operator"
	ContextRequestIDKey = "request_id"
)

// Operator is the caller named by a verified bearer token.
type Operator struct {
	Subject string `json:"subject"`
}
