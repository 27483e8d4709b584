package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMaxBody(t *testing.T) {
	const limit = 100

	handler := MaxBody(limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name           string
		method         string
		bodySize       int
		expectedStatus int
	}{
		{"POST within limit", http.MethodPost, 50, http.StatusOK},
		{"POST at limit", http.MethodPost, 100, http.StatusOK},
		{"POST exceeds limit", http.MethodPost, 200, http.StatusRequestEntityTooLarge},
		{"PUT exceeds limit", http.MethodPut, 200, http.StatusRequestEntityTooLarge},
		{"GET not limited", http.MethodGet, 0, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Repeat("x", tt.bodySize)
			req := httptest.NewRequest(tt.method, "/scenarios/launch", bytes.NewBufferString(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestMaxBody_DefaultLimit(t *testing.T) {
	handler := MaxBody(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/simulate", bytes.NewBufferString("small body"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}
