package utils

// CustomError is an error that carries the HTTP status it maps to
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// Messages for the "not enough X" conditions, so controllers and tests
// can match on them instead of on status codes alone.
const (
	ErrNotEnoughPlaces     = "not enough places found"
	ErrNotEnoughOpen       = "not enough open places"
	ErrNoOpenReplacement   = "no open replacement found"
	ErrProviderUnavailable = "places provider unavailable"
	ErrMissingAPIKey       = "maps api key not configured"
)
