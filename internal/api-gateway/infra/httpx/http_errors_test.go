package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatusFromGRPC(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"InvalidArgument -> 400", status.Error(codes.InvalidArgument, "bad"), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"NotFound -> 404", status.Error(codes.NotFound, "missing"), http.StatusNotFound, "NOT_FOUND"},
		{"FailedPrecondition -> 409", status.Error(codes.FailedPrecondition, "empty"), http.StatusConflict, "FAILED_PRECONDITION"},
		{"Unavailable -> 503", status.Error(codes.Unavailable, "down"), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"DeadlineExceeded -> 503", status.Error(codes.DeadlineExceeded, "timeout"), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"Internal -> 500", status.Error(codes.Internal, "oops"), http.StatusInternalServerError, "INTERNAL"},
		{"wrapped NotFound -> 404", fmt.Errorf("grpc GetScreen: %w", status.Error(codes.NotFound, "missing")), http.StatusNotFound, "NOT_FOUND"},
		{"non-grpc error -> 500", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotCode, _ := httpStatusFromGRPC(tt.err)
			if gotStatus != tt.wantStatus || gotCode != tt.wantCode {
				t.Fatalf("got (%d,%s)", gotStatus, gotCode)
			}
		})
	}
}
