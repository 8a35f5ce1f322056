package testutil

import (
	"errors"
	"testing"

	apperrors "famfin/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertFieldError checks that err is a validation AppError carrying a
// message for the given field.
func AssertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	AssertAppError(t, err, "VALIDATION_FAILED")

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return
	}
	if _, ok := appErr.Fields[field]; !ok {
		t.Errorf("expected field error for %q, got %v", field, appErr.Fields)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
