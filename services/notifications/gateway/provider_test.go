package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/fundlink/backoffice/internal/pkg/http"
)

func setupProviderTest(t *testing.T, handler http.HandlerFunc) *ProviderGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := pkghttp.NewClient(pkghttp.Config{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		APIKey:  "test-key",
	})

	return &ProviderGW{client: client}
}

func TestSendEmail_Success(t *testing.T) {
	gw := setupProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/email", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload emailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Transaction Notification", payload.Subject)
		assert.Equal(t, "maria.gomez@example.com", payload.Email)

		w.WriteHeader(http.StatusAccepted)
	})

	sent, err := gw.SendEmail(context.Background(),
		"Transaction Notification", "test message", "maria.gomez@example.com")
	assert.NoError(t, err)
	assert.True(t, sent)
}

func TestSendEmail_ProviderRejects(t *testing.T) {
	gw := setupProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	sent, err := gw.SendEmail(context.Background(), "subject", "message", "x@example.com")
	assert.NoError(t, err)
	assert.False(t, sent)
}

func TestSendSMS_Success(t *testing.T) {
	gw := setupProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sms", r.URL.Path)

		var payload smsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "+573001112233", payload.PhoneNumber)

		w.WriteHeader(http.StatusOK)
	})

	sent, err := gw.SendSMS(context.Background(), "test message", "+573001112233")
	assert.NoError(t, err)
	assert.True(t, sent)
}

func TestSendSMS_ProviderUnreachable(t *testing.T) {
	client := pkghttp.NewClient(pkghttp.Config{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	})
	gw := &ProviderGW{client: client}

	sent, err := gw.SendSMS(context.Background(), "test message", "+573001112233")
	assert.Error(t, err)
	assert.False(t, sent)
}
