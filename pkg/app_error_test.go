package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("NOT_FOUND", "Record not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Record not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}

	cause := errors.New("dynamodb down")
	wrapped := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("secret detail")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
