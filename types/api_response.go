package types

// SuccessResponse acknowledges an accepted feedback submission.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the wire shape for every failure path. Details is populated
// only for validation failures, one entry per violated rule.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// StatusResponse reports a simple operation status.
type StatusResponse struct {
	Status string `json:"status"`
}
