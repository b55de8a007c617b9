package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediconnect/backend/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteData(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteData(rec, http.StatusCreated, map[string]string{"title": "T"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
}

func TestWriteListIncludesCount(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteList(rec, []string{"a", "b"}, 2)

	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	require.NotNil(t, body.Count)
	assert.Equal(t, 2, *body.Count)
}

func TestWriteListZeroCount(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteList(rec, []string{}, 0)

	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Count, "count must be present even when zero")
	assert.Equal(t, 0, *body.Count)
}

func TestWriteErrorApiErr(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteError(rec, errs.NewNotFoundError("Blog not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Blog not found", body.Message)
}

func TestWriteErrorUnexpected(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteError(rec, errors.New("something broke"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "something broke", body.Error)
}

func TestWriteErrorIncludesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	responder := NewResponder(zerolog.Nop())

	responder.WriteError(rec, errs.NewDispatchError("Police", errors.New("resend API error (status 500)")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "Police")
	assert.Contains(t, body.Error, "resend API error")
}
