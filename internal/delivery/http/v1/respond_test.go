package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/internal/domain"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", domain.NewValidationError("quantity", "must be positive"), http.StatusBadRequest},
		{"not found maps to 404", domain.NewNotFoundError("order", "abc"), http.StatusNotFound},
		{"authorization maps to 403", domain.NewAuthorizationError("only the purchaser can request a return"), http.StatusForbidden},
		{"invalid state maps to 409", domain.NewInvalidStateError("Pending", "delivery can only be assigned to accepted orders"), http.StatusConflict},
		{"policy violation maps to 422", domain.NewPolicyViolationError(9, 7), http.StatusUnprocessableEntity},
		{"write conflict maps to 409", domain.NewConflictError("order", "abc"), http.StatusConflict},
		{"unknown errors stay opaque 500", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			respondError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Contains(t, body, "error")

			if tc.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", body["error"])
				assert.NotContains(t, body["error"], "pq:")
			} else {
				assert.Equal(t, tc.err.Error(), body["error"])
			}
		})
	}
}
