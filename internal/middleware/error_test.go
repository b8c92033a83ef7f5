package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProperty_ErrorsHaveConsistentStructure(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("all error responses share one envelope", prop.ForAll(
		func(message string) bool {
			standardCodes := []int{
				http.StatusBadRequest,
				http.StatusUnauthorized,
				http.StatusNotFound,
				http.StatusBadGateway,
				http.StatusInternalServerError,
			}
			statusCode := standardCodes[len(message)%len(standardCodes)]

			if len(message) == 0 {
				message = "test error"
			}

			w := httptest.NewRecorder()
			RespondWithError(w, statusCode, message)

			if w.Code != statusCode {
				return false
			}
			if w.Header().Get("Content-Type") != "application/json" {
				return false
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				return false
			}

			if resp.Error.Code != http.StatusText(statusCode) {
				return false
			}
			if resp.Error.Message != message {
				return false
			}

			// Timestamp must parse as RFC3339
			_, err := time.Parse(time.RFC3339, resp.Error.Timestamp)
			return err == nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestErrorHandlingMiddleware_RecoversPanics(t *testing.T) {
	logger := zap.NewNop()

	handler := ErrorHandlingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/artworks/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error.Message)
}

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusCreated, map[string]string{"id": "navidad-2025"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"navidad-2025"}`, w.Body.String())
}

func TestRespondWithValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithValidationErrors(w, []ValidationError{{Field: "Secret", Message: "This field is required"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	assert.Contains(t, w.Body.String(), "Secret")
}
