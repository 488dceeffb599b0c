package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrorBadRequest   = "FLW_BAD_REQUEST"
	ErrorUnauthorized = "FLW_UNAUTHORIZED"
	ErrorForbidden    = "FLW_FORBIDDEN"
	ErrorHTTP         = "FLW_HTTP_ERROR"
	ErrorAccessToken  = "FLW_ACCESS_TOKEN"
	ErrorConfig       = "FLW_CONFIG"
)

const (
	// UnknownErrorType is assigned when the upstream error carries no type.
	UnknownErrorType = "UNKNOWN_ERROR"
	// UnknownErrorCode is assigned when the upstream error carries no code.
	UnknownErrorCode = "000000"
)

const (
	metadataErrorType = "error_type"
	metadataErrorCode = "error_code"
	metadataEnvelope  = "envelope"
	metadataStatus    = "status_code"
)

// FromStatus maps an HTTP status and a normalized error envelope onto the
// closed taxonomy: 400 bad request, 401 unauthorized, 403 forbidden, anything
// else a generic HTTP error carrying the status. The cause, when present, is
// preserved for diagnostic chaining.
func FromStatus(status int, envelope ErrorEnvelope, cause error) *goerrors.Error {
	envelope = normalizeEnvelope(envelope, cause)

	category, textCode := classifyStatus(status)
	message := strings.TrimSpace(envelope.Message)
	if message == "" {
		message = defaultStatusMessage(status)
		envelope.Message = message
	}

	var err *goerrors.Error
	switch {
	case status == http.StatusBadRequest && len(envelope.ValidationErrors) > 0:
		err = goerrors.NewValidation(message, fieldErrors(envelope.ValidationErrors)...)
	case cause != nil:
		err = goerrors.Wrap(cause, category, message)
	default:
		err = goerrors.New(message, category)
	}

	return err.
		WithCode(status).
		WithTextCode(textCode).
		WithMetadata(map[string]any{
			metadataErrorType: envelope.Type,
			metadataErrorCode: envelope.Code,
			metadataEnvelope:  envelope,
			metadataStatus:    status,
		})
}

// ConfigError marks a construction-time configuration failure.
func ConfigError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(ErrorConfig)
}

// AccessTokenError wraps a failure raised while acquiring or refreshing an
// access token, always preserving the underlying cause.
func AccessTokenError(cause error, message string) *goerrors.Error {
	if cause == nil {
		return goerrors.New(message, goerrors.CategoryAuth).
			WithCode(http.StatusUnauthorized).
			WithTextCode(ErrorAccessToken)
	}
	return goerrors.Wrap(cause, goerrors.CategoryAuth, message).
		WithCode(http.StatusUnauthorized).
		WithTextCode(ErrorAccessToken)
}

func IsBadRequest(err error) bool { return hasTextCode(err, ErrorBadRequest) }

func IsUnauthorized(err error) bool { return hasTextCode(err, ErrorUnauthorized) }

func IsForbidden(err error) bool { return hasTextCode(err, ErrorForbidden) }

func IsAccessTokenError(err error) bool { return hasTextCode(err, ErrorAccessToken) }

func IsConfigError(err error) bool { return hasTextCode(err, ErrorConfig) }

// EnvelopeFrom recovers the normalized error envelope attached by FromStatus.
func EnvelopeFrom(err error) (ErrorEnvelope, bool) {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) || rich.Metadata == nil {
		return ErrorEnvelope{}, false
	}
	envelope, ok := rich.Metadata[metadataEnvelope].(ErrorEnvelope)
	return envelope, ok
}

// ErrorCode returns the upstream error code ("10401" style), or the unknown
// sentinel when none was carried.
func ErrorCode(err error) string {
	if envelope, ok := EnvelopeFrom(err); ok {
		return envelope.Code
	}
	return UnknownErrorCode
}

// StatusCode returns the HTTP status the error was built from, 0 when the
// error is not a taxonomy member.
func StatusCode(err error) int {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return 0
	}
	return rich.Code
}

func hasTextCode(err error, textCode string) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == textCode
}

func classifyStatus(status int) (goerrors.Category, string) {
	switch status {
	case http.StatusBadRequest:
		return goerrors.CategoryBadInput, ErrorBadRequest
	case http.StatusUnauthorized:
		return goerrors.CategoryAuth, ErrorUnauthorized
	case http.StatusForbidden:
		return goerrors.CategoryAuthz, ErrorForbidden
	default:
		return goerrors.CategoryExternal, ErrorHTTP
	}
}

func defaultStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request. The server could not understand the request due to invalid syntax."
	case http.StatusUnauthorized:
		return "Unauthorized. Valid credentials are required to access this resource."
	case http.StatusForbidden:
		return "Forbidden. You do not have permission to access this resource."
	default:
		return "Request failed: an error occurred."
	}
}

func normalizeEnvelope(envelope ErrorEnvelope, cause error) ErrorEnvelope {
	envelope.Type = strings.ToUpper(strings.TrimSpace(envelope.Type))
	if envelope.Type == "" {
		envelope.Type = UnknownErrorType
	}
	if strings.TrimSpace(envelope.Code) == "" {
		envelope.Code = UnknownErrorCode
	}
	if strings.TrimSpace(envelope.Message) == "" && cause != nil {
		envelope.Message = cause.Error()
	}
	if envelope.ValidationErrors == nil {
		envelope.ValidationErrors = []ValidationError{}
	}
	return envelope
}

func fieldErrors(validation []ValidationError) []goerrors.FieldError {
	fields := make([]goerrors.FieldError, 0, len(validation))
	for _, item := range validation {
		fields = append(fields, goerrors.FieldError{
			Field:   item.Field,
			Message: item.Message,
		})
	}
	return fields
}
