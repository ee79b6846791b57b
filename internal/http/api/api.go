package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/event"
	"github.com/inwords/expenses/internal/expense"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrMalformed marks a request body that could not be parsed.
var ErrMalformed = errors.New("malformed request")

// Decode parses the JSON body into dst and runs struct validation.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	if err := validate.Struct(dst); err != nil {
		return err
	}

	return nil
}

// Access extracts the credential from the request: a bearer share token
// or the X-Pin-Code header.
func Access(r *http.Request) event.Access {
	access := event.Access{
		PinCode: r.Header.Get("X-Pin-Code"),
	}

	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		access.ShareToken = strings.TrimPrefix(auth, "Bearer ")
	}

	return access
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error maps a domain error to an HTTP status and machine-readable
// error code.
func Error(w http.ResponseWriter, err error) {
	status, code := classify(err)

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		JSON(w, status, errorResponse{Code: code, Message: "internal error"})

		return
	}

	JSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, event.ErrNotFound):
		return http.StatusNotFound, "event_not_found"
	case errors.Is(err, event.ErrDeleted):
		return http.StatusGone, "event_deleted"
	case errors.Is(err, event.ErrInvalidPinCode):
		return http.StatusForbidden, "invalid_pin_code"
	case errors.Is(err, event.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, event.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired"
	case errors.Is(err, event.ErrBusy):
		return http.StatusConflict, "event_busy"
	case errors.Is(err, currency.ErrNotFound):
		return http.StatusNotFound, "currency_not_found"
	case errors.Is(err, currency.ErrRateNotFound):
		return http.StatusNotFound, "currency_rate_not_found"
	case errors.Is(err, expense.ErrInvalidSplit):
		return http.StatusUnprocessableEntity, "invalid_split"
	case errors.Is(err, expense.ErrInconsistentExchangedAmount):
		return http.StatusUnprocessableEntity, "inconsistent_exchanged_amount"
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, "validation_failed"
	case errors.Is(err, ErrMalformed):
		return http.StatusBadRequest, "malformed_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
