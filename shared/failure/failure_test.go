package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"

	"rental/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "missing fields",
	}

	if f.Error() != "missing fields" {
		t.Errorf("expected error message to be 'missing fields', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"BadRequest", failure.BadRequest(errors.New("invalid date range")), http.StatusBadRequest, "invalid date range"},
		{"BadRequestFromString", failure.BadRequestFromString("invalid card"), http.StatusBadRequest, "invalid card"},
		{"Unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, "token expired"},
		{"InternalError", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
		{"NotFound", failure.NotFound("property not found"), http.StatusNotFound, "property not found"},
		{"Conflict", failure.Conflict("email already registered"), http.StatusConflict, "email already registered"},
		{"UnprocessableEntity", failure.UnprocessableEntity("could not create booking"), http.StatusUnprocessableEntity, "could not create booking"},
		{"Forbidden", failure.Forbidden("Access denied"), http.StatusForbidden, "Access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilConstructors(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name    string
		input   error
		code    int
		message string
	}{
		{
			name:    "foreign key violation",
			input:   &pq.Error{Code: "23503", Message: "violates foreign key constraint"},
			code:    http.StatusConflict,
			message: "in use",
		},
		{
			name:    "unique violation wrapped",
			input:   fmt.Errorf("insert user: %w", &pq.Error{Code: "23505"}),
			code:    http.StatusConflict,
			message: "in use",
		},
		{
			name:    "exclusion violation",
			input:   &pq.Error{Code: "23P01"},
			code:    http.StatusConflict,
			message: "in use",
		},
		{
			name:    "other postgres error",
			input:   &pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"},
			code:    http.StatusInternalServerError,
			message: failure.PersistenceError.Message,
		},
		{
			name:    "plain error hides detail",
			input:   errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			code:    http.StatusInternalServerError,
			message: failure.PersistenceError.Message,
		},
		{
			name:    "failure passes through",
			input:   failure.NotFound("property not found"),
			code:    http.StatusNotFound,
			message: "property not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromStore(tt.input, "in use")
			if code := failure.GetCode(err); code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, code)
			}
			if err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, err.Error())
			}
		})
	}

	if err := failure.FromStore(nil, "in use"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure error", &failure.Failure{Code: http.StatusBadRequest, Message: "test"}, http.StatusBadRequest},
		{"wrapped failure error", fmt.Errorf("wrap: %w", failure.Conflict("test")), http.StatusConflict},
		{"regular error", errors.New("regular error"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
