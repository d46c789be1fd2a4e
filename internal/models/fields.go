package models

import (
	"net/url"
	"strings"
)

// Checkout form field names.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldFulfillmentType = "fulfillmentType"
	FieldAddressLine1    = "addressLine1"
	FieldCity            = "city"
	FieldPostalCode      = "postalCode"
	FieldPickupLocation  = "pickupLocation"
	FieldPickupTime      = "pickupTime"
	FieldPaymentMethod   = "paymentMethod"
	FieldCardNumber      = "cardNumber"
	FieldCardExpiry      = "cardExpiry"
	FieldCardCVC         = "cardCvc"
	FieldAgreeToTerms    = "agreeToTerms"
)

// Fields is the flat, unvalidated form state: field name to raw string or
// bool value. Fields of unselected variants may be present.
type Fields map[string]any

// FieldsFromValues converts a form-encoded post. Only the first value of a
// repeated key is kept.
func FieldsFromValues(v url.Values) Fields {
	out := make(Fields, len(v))
	for k := range v {
		out[k] = v.Get(k)
	}
	return out
}

// Text returns the trimmed string value of key. Missing keys and non-string
// values read as empty.
func (f Fields) Text(key string) string {
	s, ok := f[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Checked reports whether key holds a boolean true, either as a JSON bool or
// as "true" or "on" from a form post.
func (f Fields) Checked(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		v = strings.TrimSpace(v)
		return strings.EqualFold(v, "true") || strings.EqualFold(v, "on")
	default:
		return false
	}
}
