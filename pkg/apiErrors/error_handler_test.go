package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code           string
		expectedStatus int
	}{
		{code: ErrInvalidRange, expectedStatus: http.StatusBadRequest},
		{code: ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
		{code: ErrDatabaseOperation, expectedStatus: http.StatusInternalServerError},
		{code: ErrInsufficientPrivilege, expectedStatus: http.StatusForbidden},
		{code: ErrNotFound, expectedStatus: http.StatusNotFound},
		{code: ErrServiceDisabled, expectedStatus: http.StatusServiceUnavailable},
		{code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "range"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
