package response

// Shared messages and codes for the standard response body.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error. Please try again later."

	InternalServerErrorCode = 500
)
