package models_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"dora-eats/internal/models"
)

func TestOrderRequest_JSONCarriesOnlySelectedVariants(t *testing.T) {
	in := models.OrderRequest{
		Contact:       models.Contact{FullName: "Nobita Nobi", Email: "n@x.com", Phone: "1234567890"},
		Fulfillment:   models.Pickup{LocationID: "dora_bell_cafe", TimeSlot: "12:00"},
		Payment:       models.CashOnDelivery{},
		AgreedToTerms: true,
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var wire struct {
		Fulfillment map[string]any `json:"fulfillment"`
		Payment     map[string]any `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(b, &wire))
	require.Equal(t, map[string]any{"type": "pickup", "locationId": "dora_bell_cafe", "timeSlot": "12:00"}, wire.Fulfillment)
	require.Equal(t, map[string]any{"method": "cash_on_delivery"}, wire.Payment)

	var out models.OrderRequest
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderRequest_JSONDeliveryAndCard(t *testing.T) {
	in := models.OrderRequest{
		Contact:       models.Contact{FullName: "Shizuka", Email: "s@x.com", Phone: "0987654321"},
		Fulfillment:   models.Delivery{AddressLine1: "1-2-3 Tsukimidai", City: "Tokyo", PostalCode: "100-0001"},
		Payment:       models.CreditCard{Number: "1234567890123456", Expiry: "12/29", CVC: "123"},
		AgreedToTerms: true,
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out models.OrderRequest
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderRequest_UnmarshalRejectsUnknownTags(t *testing.T) {
	var o models.OrderRequest
	require.Error(t, json.Unmarshal([]byte(`{"fulfillment":{"type":"teleport"}}`), &o))
	require.Error(t, json.Unmarshal([]byte(`{"payment":{"method":"barter"}}`), &o))

	require.NoError(t, json.Unmarshal([]byte(`{"contact":{"fullName":"Gian"}}`), &o))
	require.Nil(t, o.Fulfillment)
	require.Nil(t, o.Payment)
}

func TestOrderRequest_Redacted(t *testing.T) {
	o := models.OrderRequest{Payment: models.CreditCard{Number: "1234567890123456", Expiry: "01/30", CVC: "999"}}

	r := o.Redacted()
	require.Equal(t, models.CreditCard{Number: "************3456", Expiry: "01/30"}, r.Payment)
	require.Equal(t, "999", o.Payment.(models.CreditCard).CVC, "original is untouched")

	cash := models.OrderRequest{Payment: models.DoraPay{}}
	require.Equal(t, cash, cash.Redacted())
}

func TestFields_TextAndChecked(t *testing.T) {
	f := models.Fields{
		"fullName":     "  Nobita Nobi ",
		"phone":        1234567890.0,
		"agreeToTerms": true,
		"other":        "TRUE",
	}
	require.Equal(t, "Nobita Nobi", f.Text("fullName"))
	require.Equal(t, "", f.Text("phone"), "non-string values read as empty")
	require.Equal(t, "", f.Text("missing"))
	require.True(t, f.Checked("agreeToTerms"))
	require.True(t, f.Checked("other"))
	require.False(t, f.Checked("fullName"))
	require.False(t, f.Checked("missing"))

	form := models.FieldsFromValues(url.Values{"email": {"a@b.co", "ignored"}, "agreeToTerms": {"true"}})
	require.Equal(t, "a@b.co", form.Text("email"))
	require.True(t, form.Checked("agreeToTerms"))
}

func TestFields_CheckboxPostsOn(t *testing.T) {
	form := models.FieldsFromValues(url.Values{"agreeToTerms": {"on"}})
	require.True(t, form.Checked("agreeToTerms"))

	for _, raw := range []string{"", "off", "yes", "1"} {
		form = models.FieldsFromValues(url.Values{"agreeToTerms": {raw}})
		require.False(t, form.Checked("agreeToTerms"), raw)
	}
}
