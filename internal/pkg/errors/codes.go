package errors

import "net/http"

const (
	CodeActionNotFound       = "ACTION_NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidReferenceData = "INVALID_REFERENCE_DATA"
	CodeInternalServer       = "INTERNAL_SERVER_ERROR"
)

var (
	ErrActionNotFound = New(
		CodeActionNotFound,
		"No registered action found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidReferenceData = New(
		CodeInvalidReferenceData,
		"Reference data is inconsistent",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
