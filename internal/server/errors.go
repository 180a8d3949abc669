package server

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	authdomain "github.com/classhive/classhive/internal/auth/domain"
	identitydomain "github.com/classhive/classhive/internal/identity/domain"
	schooldomain "github.com/classhive/classhive/internal/school/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrRateLimited = errors.New("rate limit exceeded")

// ErrorHandlingMiddleware converts domain errors recorded on the context
// into transport error responses. Domain errors are mapped exactly once,
// here; unexpected errors are logged and surfaced opaquely.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			zap.L().Error("unexpected error handling request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(lastErr.Err),
			)
		}
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// bindError turns a ShouldBindJSON failure into a mappable validation error.
func bindError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return err
	}
	return invalidRequestError()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "Validation failed",
			Errors:  vErr.Errors,
		}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "Validation failed",
			Errors:  convertFieldErrors(fieldErrs),
		}
	}

	switch {
	case errors.Is(err, authdomain.ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: err.Error(),
		}
	case errors.Is(err, authdomain.ErrUserCreationFailed):
		return http.StatusBadRequest, errorPayload{
			Type:    "bad_request",
			Message: "User creation failed",
		}
	case errors.Is(err, schooldomain.ErrSlugTaken):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "slug already in use",
		}
	case errors.Is(err, schooldomain.ErrInvalidName):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "Validation failed",
			Errors: []ValidationError{
				{Field: "name", Code: "invalid_name", Message: "name must be at least 3 characters"},
			},
		}
	case errors.Is(err, schooldomain.ErrInvalidSlug):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "Validation failed",
			Errors: []ValidationError{
				{Field: "slug", Code: "invalid_slug", Message: "slug must be lowercase letters, digits and hyphens"},
			},
		}
	case errors.Is(err, schooldomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "rate limit exceeded",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func convertFieldErrors(fieldErrs validator.ValidationErrors) []ValidationError {
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   lowerFirst(fe.Field()),
			Code:    fe.Tag(),
			Message: fieldErrorMessage(fe),
		})
	}
	return out
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// classifyErrorForLog feeds the request logger's error fields.
func classifyErrorForLog(err error) (string, string) {
	switch {
	case asValidationErrors(err) != nil:
		return "validation", "validation_error"
	case errors.Is(err, authdomain.ErrUnauthorized):
		return "auth", "unauthorized"
	case errors.Is(err, authdomain.ErrUserCreationFailed):
		return "auth", "user_creation_failed"
	case errors.Is(err, schooldomain.ErrSlugTaken):
		return "school", "slug_taken"
	case errors.Is(err, schooldomain.ErrNotFound):
		return "school", "not_found"
	case errors.Is(err, identitydomain.ErrProviderUnavailable):
		return "identity", "provider_unavailable"
	case errors.Is(err, ErrRateLimited):
		return "ratelimit", "rate_limited"
	default:
		return "internal", strings.TrimSpace(err.Error())
	}
}
