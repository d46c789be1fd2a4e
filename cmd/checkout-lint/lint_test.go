package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dora-eats/internal/checkout"
	"dora-eats/internal/models"
)

func TestReadFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullName":"Nobita Nobi","agreeToTerms":true}`), 0o600))

	got, err := readFields(path)
	require.NoError(t, err)
	if diff := cmp.Diff(models.Fields{"fullName": "Nobita Nobi", "agreeToTerms": true}, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))
	_, err = readFields(path)
	require.Error(t, err)

	_, err = readFields(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLint(t *testing.T) {
	v := checkout.New(checkout.DefaultOptions())

	var buf bytes.Buffer
	ok := lint(&buf, v, models.Fields{
		"fullName":        "Nobita Nobi",
		"email":           "n@x.com",
		"phone":           "1234567890",
		"fulfillmentType": "pickup",
		"pickupLocation":  "dora_bell_cafe",
		"pickupTime":      "12:00",
		"paymentMethod":   "credit_card",
		"cardNumber":      "1234567890123456",
		"cardExpiry":      "08/27",
		"cardCvc":         "123",
		"agreeToTerms":    true,
	})
	require.True(t, ok)
	require.Contains(t, buf.String(), `"number": "************3456"`)
	require.NotContains(t, buf.String(), "cvc")

	buf.Reset()
	ok = lint(&buf, v, models.Fields{"fullName": "N"})
	require.False(t, ok)
	require.Contains(t, buf.String(), "agreeToTerms: You must agree to the terms and conditions.\n")
	require.Contains(t, buf.String(), "fullName: Please enter your full name (at least 2 characters).\n")
}
