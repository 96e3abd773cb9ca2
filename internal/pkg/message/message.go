package message

const (
	InvalidUser      = "Invalid username/email or password."
	InvalidInput     = "Invalid input."
	Unauthorized     = "Authentication required."
	Forbidden        = "You are not allowed to perform this action."
	NotFoundFmt      = "%s not found."
	EnvErrFmt        = "environment variable is not set: %s"
	UploadFailed     = "Failed to upload file."
	TooManyRequests  = "Too many requests."
	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
