package models

// NotifySuccessMessage is returned once every sale alert of a batch is stored.
const NotifySuccessMessage = "Alert added successfully"

// ExecResult is the outcome of a single data-modifying statement.
type ExecResult struct {
	// InsertID is the identifier generated by an INSERT. Zero for
	// UPDATE and DELETE statements.
	InsertID int64 `json:"insertId"`

	// AffectedRows is the number of rows touched by the statement.
	AffectedRows int64 `json:"affectedRows"`
}

// NotifyResponse is returned by POST /notify.
type NotifyResponse struct {
	Message string `json:"message"`

	// Data holds one result per stored alert, in request order.
	Data []ExecResult `json:"data"`
}

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
