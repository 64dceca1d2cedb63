package apperrors

// ErrorCode identifies an error class in API responses.
type ErrorCode string

const (
	// System faults
	CodeInternalError           ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError           ErrorCode = "DATABASE_ERROR"
	CodeCollaboratorUnavailable ErrorCode = "COLLABORATOR_UNAVAILABLE"

	// Request faults
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
