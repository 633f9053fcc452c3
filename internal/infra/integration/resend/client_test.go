package resend_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obsidianco/lead-capture/internal/infra/integration/resend"
)

func TestSendEmailSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "re_123"})
	}))
	defer srv.Close()

	client := resend.NewClient("re_test_key", srv.URL)

	id, err := client.SendEmail(resend.SendEmailInput{
		From:    "Mike <mike@theobsidianco.com>",
		To:      "jane@shop.io",
		Subject: "Your checklist",
		HTML:    "<p>Hey Jane</p>",
		Text:    "Hey Jane",
	})

	assert.NoError(t, err)
	assert.Equal(t, "re_123", id)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, []any{"jane@shop.io"}, gotBody["to"])
	assert.Equal(t, "Your checklist", gotBody["subject"])
}

func TestSendEmailRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := resend.NewClient("re_test_key", srv.URL)

	_, err := client.SendEmail(resend.SendEmailInput{
		From: "bogus",
		To:   "jane@shop.io",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}
