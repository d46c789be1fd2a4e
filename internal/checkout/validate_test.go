package checkout_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"dora-eats/internal/checkout"
	"dora-eats/internal/models"
)

func newValidator() *checkout.Validator {
	return checkout.New(checkout.DefaultOptions())
}

// pickupForm is the storefront's reference pickup order.
func pickupForm() models.Fields {
	return models.Fields{
		"fullName":        "Nobita Nobi",
		"email":           "n@x.com",
		"phone":           "1234567890",
		"fulfillmentType": "pickup",
		"pickupLocation":  "dora_bell_cafe",
		"pickupTime":      "12:00",
		"paymentMethod":   "cash_on_delivery",
		"agreeToTerms":    true,
	}
}

func deliveryCardForm() models.Fields {
	return models.Fields{
		"fullName":        "Shizuka Minamoto",
		"email":           "shizuka@example.com",
		"phone":           "+81 (03) 1234-5678",
		"fulfillmentType": "delivery",
		"addressLine1":    "1-2-3 Tsukimidai",
		"city":            "Nerima",
		"postalCode":      "176-0001",
		"paymentMethod":   "credit_card",
		"cardNumber":      "1234567890123456",
		"cardExpiry":      "08/27",
		"cardCvc":         "123",
		"agreeToTerms":    true,
	}
}

func with(f models.Fields, kv ...any) models.Fields {
	out := models.Fields{}
	for k, v := range f {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}

func without(f models.Fields, keys ...string) models.Fields {
	out := with(f)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func TestValidate_ReferencePickupOrder(t *testing.T) {
	req, errs := newValidator().Validate(pickupForm())

	require.Nil(t, errs)
	require.Equal(t, models.OrderRequest{
		Contact:       models.Contact{FullName: "Nobita Nobi", Email: "n@x.com", Phone: "1234567890"},
		Fulfillment:   models.Pickup{LocationID: "dora_bell_cafe", TimeSlot: "12:00"},
		Payment:       models.CashOnDelivery{},
		AgreedToTerms: true,
	}, req)
}

func TestValidate_DeliveryWithCard(t *testing.T) {
	req, errs := newValidator().Validate(deliveryCardForm())

	require.Nil(t, errs)
	require.Equal(t, models.Delivery{AddressLine1: "1-2-3 Tsukimidai", City: "Nerima", PostalCode: "176-0001"}, req.Fulfillment)
	require.Equal(t, models.CreditCard{Number: "1234567890123456", Expiry: "08/27", CVC: "123"}, req.Payment)
}

func TestValidate_FulfillmentTypeRequired(t *testing.T) {
	v := newValidator()
	for _, raw := range []any{nil, "", "teleport", "Delivery", true} {
		f := with(pickupForm(), "fulfillmentType", raw)
		if raw == nil {
			f = without(pickupForm(), "fulfillmentType")
		}
		_, errs := v.Validate(f)
		require.True(t, errs.Has("fulfillmentType"), "value %v", raw)
		require.False(t, errs.Has("pickupLocation"))
		require.False(t, errs.Has("addressLine1"))
	}
}

func TestValidate_ShortAddressAlwaysFails(t *testing.T) {
	v := newValidator()
	for _, addr := range []string{"", "1", "Main", "  ab  "} {
		_, errs := v.Validate(with(deliveryCardForm(), "addressLine1", addr))
		require.Equal(t, map[string]string{"addressLine1": "Address line is required for delivery (min 5 characters)."}, map[string]string(errs))

		_, errs = v.Validate(models.Fields{"fulfillmentType": "delivery", "addressLine1": addr})
		require.True(t, errs.Has("addressLine1"))
	}
}

func TestValidate_DeliveryFieldRules(t *testing.T) {
	v := newValidator()

	_, errs := v.Validate(with(deliveryCardForm(), "city", "N", "postalCode", "1!"))
	require.Equal(t, []string{"city", "postalCode"}, errs.Fields())

	_, errs = v.Validate(without(deliveryCardForm(), "city", "postalCode"))
	require.Equal(t, []string{"city", "postalCode"}, errs.Fields())

	_, errs = v.Validate(with(deliveryCardForm(), "postalCode", "SW1A 1AA"))
	require.Nil(t, errs)
}

func TestValidate_PickupIgnoresDeliveryFields(t *testing.T) {
	f := with(pickupForm(),
		"addressLine1", "x",
		"city", "",
		"postalCode", "!!",
	)
	req, errs := newValidator().Validate(f)

	require.Nil(t, errs)
	require.Equal(t, models.Pickup{LocationID: "dora_bell_cafe", TimeSlot: "12:00"}, req.Fulfillment)

	_, errs = newValidator().Validate(with(f, "pickupTime", ""))
	require.Equal(t, []string{"pickupTime"}, errs.Fields())
}

func TestValidate_PickupMembership(t *testing.T) {
	v := newValidator()

	_, errs := v.Validate(without(pickupForm(), "pickupLocation", "pickupTime"))
	require.Equal(t, "Please select a pickup location.", errs["pickupLocation"])
	require.Equal(t, "Please select a pickup time.", errs["pickupTime"])

	_, errs = v.Validate(with(pickupForm(), "pickupLocation", "moon_base", "pickupTime", "03:00"))
	require.Equal(t, "Please choose one of the listed pickup locations.", errs["pickupLocation"])
	require.Equal(t, "Please choose one of the listed pickup times.", errs["pickupTime"])
}

func TestValidate_PickupSetsComeFromOptions(t *testing.T) {
	v := checkout.New(checkout.Options{
		PickupLocations: []models.Choice{{ID: "moon_base"}},
		PickupTimeSlots: []models.Choice{{ID: "03:00"}},
	})

	_, errs := v.Validate(with(pickupForm(), "pickupLocation", "moon_base", "pickupTime", "03:00"))
	require.Nil(t, errs)

	_, errs = v.Validate(pickupForm())
	require.Equal(t, []string{"pickupLocation", "pickupTime"}, errs.Fields())
}

func TestValidate_CardExpiryMonth13(t *testing.T) {
	f := with(deliveryCardForm(), "cardNumber", "1234567890123456", "cardExpiry", "13/25")
	_, errs := newValidator().Validate(f)

	require.True(t, errs.Has("cardExpiry"))
	require.False(t, errs.Has("cardNumber"))
}

func TestValidate_CardRules(t *testing.T) {
	v := newValidator()
	cases := []struct {
		name  string
		field string
		value string
		ok    bool
	}{
		{"15 digits", "cardNumber", "123456789012345", false},
		{"17 digits", "cardNumber", "12345678901234567", false},
		{"spaced number", "cardNumber", "1234 5678 9012 3456", false},
		{"month 00", "cardExpiry", "00/25", false},
		{"no slash", "cardExpiry", "1225", false},
		{"four digit year", "cardExpiry", "12/2025", false},
		{"month 01", "cardExpiry", "01/30", true},
		{"cvc 2", "cardCvc", "12", false},
		{"cvc 4", "cardCvc", "1234", true},
		{"cvc 5", "cardCvc", "12345", false},
		{"cvc letters", "cardCvc", "12a", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := v.Validate(with(deliveryCardForm(), tc.field, tc.value))
			require.Equal(t, !tc.ok, errs.Has(tc.field))
		})
	}
}

func TestValidate_NonCardPaymentsIgnoreCardFields(t *testing.T) {
	v := newValidator()
	for _, method := range []string{"dora_pay", "cash_on_delivery"} {
		f := without(deliveryCardForm(), "cardNumber", "cardExpiry", "cardCvc")
		req, errs := v.Validate(with(f, "paymentMethod", method))
		require.Nil(t, errs, method)
		require.Equal(t, models.PaymentMethod(method), req.Payment.Method())

		req, errs = v.Validate(with(deliveryCardForm(), "paymentMethod", method, "cardNumber", "bogus"))
		require.Nil(t, errs, method)
		_, isCard := req.Payment.(models.CreditCard)
		require.False(t, isCard)
	}
}

func TestValidate_PaymentMethodRequired(t *testing.T) {
	_, errs := newValidator().Validate(without(pickupForm(), "paymentMethod"))
	require.Equal(t, map[string]string{"paymentMethod": "Please select a payment method."}, map[string]string(errs))

	_, errs = newValidator().Validate(with(pickupForm(), "paymentMethod", "barter"))
	require.True(t, errs.Has("paymentMethod"))
}

func TestValidate_TermsMustBeTrue(t *testing.T) {
	v := newValidator()
	for _, raw := range []any{false, "false", "", "yes", nil} {
		_, errs := v.Validate(with(pickupForm(), "agreeToTerms", raw))
		require.Equal(t, map[string]string{"agreeToTerms": "You must agree to the terms and conditions."}, map[string]string(errs))

		_, errs = v.Validate(models.Fields{"agreeToTerms": raw})
		require.True(t, errs.Has("agreeToTerms"))
	}

	for _, raw := range []string{"true", "on", " ON "} {
		_, errs := v.Validate(with(pickupForm(), "agreeToTerms", raw))
		require.Nil(t, errs, raw)
	}
}

func TestValidate_ContactRules(t *testing.T) {
	v := newValidator()

	_, errs := v.Validate(with(pickupForm(), "fullName", "N", "email", "not-an-email", "phone", "12345"))
	require.Equal(t, map[string]string{
		"fullName": "Please enter your full name (at least 2 characters).",
		"email":    "Please enter a valid email address.",
		"phone":    "Please enter a valid phone number (at least 10 digits).",
	}, map[string]string(errs))

	_, errs = v.Validate(with(pickupForm(), "phone", "12345abcde67890"))
	require.Equal(t, "Invalid phone number format.", errs["phone"])

	_, errs = v.Validate(with(pickupForm(), "phone", "123-45-678 "))
	require.True(t, errs.Has("phone"), "ten characters but only eight digits")

	_, errs = v.Validate(with(pickupForm(), "phone", "(123) 456-7890"))
	require.Nil(t, errs)
}

func TestValidate_FreeTextKeptAsTyped(t *testing.T) {
	v := newValidator()

	req, errs := v.Validate(with(deliveryCardForm(),
		"fullName", "Suneo O'Honekawa",
		"addressLine1", "Block 3<4 East",
		"city", "Tom & Jerry > Town",
	))
	require.Nil(t, errs)
	require.Equal(t, "Suneo O'Honekawa", req.Contact.FullName)
	require.Equal(t, models.Delivery{AddressLine1: "Block 3<4 East", City: "Tom & Jerry > Town", PostalCode: "176-0001"}, req.Fulfillment)
}

func TestValidate_MarkupIsRejectedNotRewritten(t *testing.T) {
	v := newValidator()
	const markup = "Please remove HTML markup from this field."

	_, errs := v.Validate(with(deliveryCardForm(), "addressLine1", "12 <Main> Street"))
	require.Equal(t, map[string]string{"addressLine1": markup}, map[string]string(errs))

	_, errs = v.Validate(with(pickupForm(), "fullName", "<b>Gian</b> Goda"))
	require.Equal(t, map[string]string{"fullName": markup}, map[string]string(errs))

	_, errs = v.Validate(with(deliveryCardForm(), "city", "<script>x</script>"))
	require.Equal(t, map[string]string{"city": markup}, map[string]string(errs))
}

func TestValidate_InvalidUTF8IsRejected(t *testing.T) {
	v := newValidator()
	const unreadable = "This field contains characters that could not be read."

	_, errs := v.Validate(with(pickupForm(), "fullName", "\xff\xfe"))
	require.Equal(t, map[string]string{"fullName": unreadable}, map[string]string(errs))

	_, errs = v.Validate(with(deliveryCardForm(), "addressLine1", "1-2-3 \xffTsukimidai", "city", "Ne\xc0rima"))
	require.Equal(t, map[string]string{"addressLine1": unreadable, "city": unreadable}, map[string]string(errs))

	_, errs = v.Validate(with(pickupForm(), "fullName", "\xff"))
	require.Equal(t, "Please enter your full name (at least 2 characters).", errs["fullName"])
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	_, errs := newValidator().Validate(models.Fields{})

	require.Equal(t, []string{"agreeToTerms", "email", "fulfillmentType", "fullName", "paymentMethod", "phone"}, errs.Fields())
	require.Len(t, errs.List(), 6)
	require.Contains(t, errs.Error(), "agreeToTerms: You must agree")
}

func TestValidate_GeneratedContacts(t *testing.T) {
	f := gofakeit.New(42)
	v := newValidator()

	for i := 0; i < 50; i++ {
		fields := with(deliveryCardForm(),
			"fullName", f.Name(),
			"email", f.Email(),
			"phone", f.Phone(),
			"addressLine1", f.Street(),
			"city", f.City(),
			"postalCode", f.Zip(),
			"cardNumber", f.Numerify("################"),
			"cardCvc", f.Numerify("###"),
		)
		req, errs := v.Validate(fields)
		require.Nil(t, errs, "%v", fields)
		require.Equal(t, fields["email"], req.Contact.Email)
	}
}
