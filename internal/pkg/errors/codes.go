package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Submission is malformed or incomplete",
		http.StatusBadRequest,
	)

	ErrMissingLocation = New(
		"MISSING_LOCATION",
		"Submission payload has no location",
		http.StatusBadRequest,
	)

	ErrMissingChatID = New(
		"MISSING_CHAT_ID",
		"Submission payload has no telegram chat id",
		http.StatusBadRequest,
	)

	ErrMissingCoordinates = New(
		"MISSING_COORDINATES",
		"Location has no coordinates",
		http.StatusBadRequest,
	)

	ErrUnsupportedCountry = New(
		"UNSUPPORTED_COUNTRY",
		"Country is not supported",
		http.StatusBadRequest,
	)

	ErrRequestNotFound = New(
		"REQUEST_NOT_FOUND",
		"Pending request not found or already processed",
		http.StatusNotFound,
	)

	ErrDocumentFetch = New(
		"FETCH_ERROR",
		"Failed to fetch remote locations document",
		http.StatusBadGateway,
	)

	ErrDocumentWrite = New(
		"WRITE_ERROR",
		"Failed to write remote locations document",
		http.StatusBadGateway,
	)

	ErrDocumentConflict = New(
		"CONFLICT_ERROR",
		"Remote locations document changed concurrently",
		http.StatusConflict,
	)

	ErrDelivery = New(
		"DELIVERY_ERROR",
		"Failed to deliver telegram notification",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
