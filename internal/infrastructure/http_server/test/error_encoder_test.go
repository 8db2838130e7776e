package httpserver_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpserver "github.com/bionicotaku/lingo-services-media/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-media/internal/models/validation"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeErrorNotification(t *testing.T) {
	n := validation.NewNotification().AppendMessage("first").AppendMessage("second")
	err := fmt.Errorf("wrapped: %w", validation.NewNotificationError("Could not create Aggregate Video", n))

	rec := httptest.NewRecorder()
	httpserver.EncodeError(rec, httptest.NewRequest(http.MethodPost, "/v1/videos", nil), err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Could not create Aggregate Video", body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "second", body.Errors[1].Message)
}

func TestEncodeErrorKratos(t *testing.T) {
	rec := httptest.NewRecorder()
	httpserver.EncodeError(rec, httptest.NewRequest(http.MethodGet, "/v1/videos/x", nil), kerrors.NotFound("REASON", "missing"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEncodeErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	httpserver.EncodeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
