package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// ErrInvalidDate is returned for a date that is neither RFC 3339 nor YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid credentials
	Message string `json:"message"`
}

// MessageResponse is the body of a successful request without payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

// FieldError describes one failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when the request body fails validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeInternalError(w http.ResponseWriter, message string, err error) {
	logger.Log.Errorw("internal server error", "message", message, "err", err)
	writeMessage(w, http.StatusInternalServerError, message)
}

// decodeBody decodes the JSON body into dst and validates it. On failure the
// 400 response has already been written and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, message string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, message)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: message,
			Fields:  parseValidationErrors(err),
		})
		return false
	}
	return true
}

func parseValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: translateValidationError(fe),
		})
	}
	return fields
}

func translateValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain digits only", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	default:
		return fmt.Sprintf("validation '%s' failed for %s", fe.Tag(), fe.Field())
	}
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// parseDateRange reads the optional startDate and endDate query parameters.
func parseDateRange(r *http.Request) (*models.DateRange, error) {
	q := r.URL.Query()
	var rng models.DateRange

	if s := q.Get("startDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		rng.Start = &t
	}
	if s := q.Get("endDate"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		rng.End = &t
	}

	if rng.IsEmpty() {
		return nil, nil
	}
	return &rng, nil
}

// accountID returns the account id carried by the verified token.
func accountID(r *http.Request) (uuid.UUID, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
