package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
	"gte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientSlotBeingBooked               = "this slot is being booked by someone else, please try again"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "Validation failed"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevURLParamIDMissing         = "URL parameter '%s' is missing"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "Failed to marshal payload into JSON"
	ErrDevCannotParseMultipartForm  = "Failed to parse multipart form"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded while processing request"
	ErrDevAuthTokenMissing          = "Authorization token is missing from request header"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or already expired"
	ErrDevAuthGenerateToken         = "Failed to generate signed token"
	ErrDevAuthSigningMethod         = "Unexpected token signing method"
	ErrDevAuthEmailMismatch         = "Token email does not match the requested resource owner"
	ErrDevAuthNotAdmin              = "Authenticated user does not carry the admin role"
	ErrDevDBFailedToFindDocument    = "DB failed to find document"
	ErrDevDBFailedToIterateDocs     = "DB failed to iterate documents"
	ErrDevDBFailedToInsertDocument  = "DB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "DB failed to update document"
	ErrDevDBFailedToDeleteDocument  = "DB failed to delete document"
	ErrDevDBStringNotObjectID       = "Given string cannot be converted into Mongo ObjectID"
	ErrDevRedisSetData              = "Redis failed to set data"
	ErrDevRedisGetData              = "Redis failed to get data"
	ErrDevRedisDeleteData           = "Redis failed to delete data"
	ErrDevRedisSetNX                = "Redis failed to execute SETNX"
	ErrDevLockNotOwned              = "Lock is not owned by this client"
	ErrDevLockNotAcquired           = "Admission lock could not be acquired"
	ErrDevMinioFailedToCreateObject = "Minio failed to create object in bucket %s"
	ErrDevRabbitMQPublish           = "RabbitMQ failed to publish message to queue %s"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request to upstream"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to upstream"
	ErrDevPaymentGatewayDecode      = "Failed to decode payment gateway response"
	ErrDevPaymentGatewayRejected    = "Payment gateway rejected the request"
)
