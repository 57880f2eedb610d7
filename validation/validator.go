package validation

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Validator interface {
	Validate(ctx context.Context, value interface{}) ValidationResult
}

type LinkURLValidator struct{}

func (v *LinkURLValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	urlStr, ok := value.(string)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "url",
			Message: "URL must be a string",
		})
		return result
	}

	if strings.TrimSpace(urlStr) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "url",
			Message: "URL cannot be empty",
			Value:   urlStr,
		})
		return result
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "url",
			Message: "Invalid URL format",
			Value:   urlStr,
		})
		return result
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "url",
			Message: "URL must use HTTP or HTTPS scheme",
			Value:   urlStr,
		})
		return result
	}

	return result
}

// ValidateLinkURL validates a bookmark or screenshot URL.
func ValidateLinkURL(ctx context.Context, url string) error {
	validator := &LinkURLValidator{}
	result := validator.Validate(ctx, url)

	if !result.Valid {
		return &ValidationErrorType{
			Type:   "link_url_validation",
			Fields: map[string]interface{}{"url": url, "validation_type": "link_url"},
			Errors: result.Errors,
		}
	}
	return nil
}

// ValidationErrorType represents a typed validation error
type ValidationErrorType struct {
	Type   string                 `json:"type"`
	Fields map[string]interface{} `json:"fields"`
	Errors []ValidationError      `json:"errors"`
}

func (e *ValidationErrorType) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("validation failed: %s", e.Type)
}

// AsValidationError attempts to convert an error to a ValidationErrorType
func AsValidationError(err error) (*ValidationErrorType, bool) {
	if verr, ok := err.(*ValidationErrorType); ok {
		return verr, true
	}
	return nil, false
}
