package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerSend(t *testing.T) {
	var got ResendEmailRequest
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ResendEmailResponse{ID: "email-123"})
	}))
	defer ts.Close()

	m := NewMailer("test-key", "Alerts <alerts@example.com>").WithBaseURL(ts.URL)

	err := m.Send(context.Background(), "subject line", "<p>hello</p>", []string{"someone@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Alerts <alerts@example.com>", got.From)
	assert.Equal(t, []string{"someone@example.com"}, got.To)
	assert.Equal(t, "subject line", got.Subject)
	assert.Equal(t, "<p>hello</p>", got.Html)
}

func TestMailerSendAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ResendErrorResponse{Message: "invalid from address"})
	}))
	defer ts.Close()

	m := NewMailer("test-key", "bad-from").WithBaseURL(ts.URL)

	err := m.Send(context.Background(), "s", "b", []string{"someone@example.com"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid from address")
	assert.ErrorContains(t, err, "422")
}

func TestMailerSendValidation(t *testing.T) {
	m := NewMailer("test-key", "from@example.com")
	err := m.Send(context.Background(), "s", "b", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "recipient")

	m = NewMailer("", "from@example.com")
	err = m.Send(context.Background(), "s", "b", []string{"someone@example.com"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "API key")
}
