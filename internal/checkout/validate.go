// Package checkout turns raw checkout form state into a validated
// models.OrderRequest or a field-keyed ErrorSet.
package checkout

import (
	"html"
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"dora-eats/internal/models"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
	postalCodePattern = regexp.MustCompile(`^[A-Za-z0-9\s-]{3,}$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

const (
	msgFullName        = "Please enter your full name (at least 2 characters)."
	msgEmail           = "Please enter a valid email address."
	msgPhoneDigits     = "Please enter a valid phone number (at least 10 digits)."
	msgPhoneFormat     = "Invalid phone number format."
	msgFulfillmentType = "Please select delivery or pickup."
	msgAddressLine1    = "Address line is required for delivery (min 5 characters)."
	msgCity            = "City is required for delivery (min 2 characters)."
	msgPostalCode      = "Valid postal code is required for delivery."
	msgPickupLocation  = "Please select a pickup location."
	msgUnknownLocation = "Please choose one of the listed pickup locations."
	msgPickupTime      = "Please select a pickup time."
	msgUnknownTime     = "Please choose one of the listed pickup times."
	msgPaymentMethod   = "Please select a payment method."
	msgCardNumber      = "Valid 16-digit card number is required."
	msgCardExpiry      = "Valid expiry date (MM/YY) is required."
	msgCardCVC         = "Valid CVC (3 or 4 digits) is required."
	msgAgreeToTerms    = "You must agree to the terms and conditions."
	msgMarkup          = "Please remove HTML markup from this field."
	msgEncoding        = "This field contains characters that could not be read."
)

// Validator is safe for concurrent use; it only reads its configuration.
type Validator struct {
	locations map[string]struct{}
	slots     map[string]struct{}
	tags      *validator.Validate
	policy    *bluemonday.Policy
}

func New(opts Options) *Validator {
	return &Validator{
		locations: idSet(opts.PickupLocations),
		slots:     idSet(opts.PickupTimeSlots),
		tags:      validator.New(),
		policy:    bluemonday.StrictPolicy(),
	}
}

// Validate evaluates every rule and collects all violations. The returned
// ErrorSet is nil exactly when the OrderRequest is usable.
func (v *Validator) Validate(f models.Fields) (models.OrderRequest, ErrorSet) {
	errs := ErrorSet{}

	req := models.OrderRequest{
		Contact:       v.contact(f, errs),
		Fulfillment:   v.fulfillment(f, errs),
		Payment:       v.payment(f, errs),
		AgreedToTerms: f.Checked(models.FieldAgreeToTerms),
	}
	if !req.AgreedToTerms {
		errs.add(models.FieldAgreeToTerms, msgAgreeToTerms)
	}

	if len(errs) > 0 {
		return models.OrderRequest{}, errs
	}
	return req, nil
}

func (v *Validator) contact(f models.Fields, errs ErrorSet) models.Contact {
	c := models.Contact{
		FullName: v.freeText(f, errs, models.FieldFullName, 2, msgFullName),
		Email:    f.Text(models.FieldEmail),
		Phone:    f.Text(models.FieldPhone),
	}

	if c.Email == "" || v.tags.Var(c.Email, "email") != nil {
		errs.add(models.FieldEmail, msgEmail)
	}
	switch {
	case countDigits(c.Phone) < 10:
		errs.add(models.FieldPhone, msgPhoneDigits)
	case !phonePattern.MatchString(c.Phone):
		errs.add(models.FieldPhone, msgPhoneFormat)
	}
	return c
}

func (v *Validator) fulfillment(f models.Fields, errs ErrorSet) models.Fulfillment {
	kind, ok := models.ParseFulfillmentType(f.Text(models.FieldFulfillmentType))
	if !ok {
		errs.add(models.FieldFulfillmentType, msgFulfillmentType)
		return nil
	}

	switch kind {
	case models.FulfillmentDelivery:
		d := models.Delivery{
			AddressLine1: v.freeText(f, errs, models.FieldAddressLine1, 5, msgAddressLine1),
			City:         v.freeText(f, errs, models.FieldCity, 2, msgCity),
			PostalCode:   f.Text(models.FieldPostalCode),
		}
		if !postalCodePattern.MatchString(d.PostalCode) {
			errs.add(models.FieldPostalCode, msgPostalCode)
		}
		return d

	default:
		p := models.Pickup{
			LocationID: f.Text(models.FieldPickupLocation),
			TimeSlot:   f.Text(models.FieldPickupTime),
		}
		checkMember(errs, models.FieldPickupLocation, p.LocationID, v.locations, msgPickupLocation, msgUnknownLocation)
		checkMember(errs, models.FieldPickupTime, p.TimeSlot, v.slots, msgPickupTime, msgUnknownTime)
		return p
	}
}

func (v *Validator) payment(f models.Fields, errs ErrorSet) models.Payment {
	method, ok := models.ParsePaymentMethod(f.Text(models.FieldPaymentMethod))
	if !ok {
		errs.add(models.FieldPaymentMethod, msgPaymentMethod)
		return nil
	}

	switch method {
	case models.PaymentCreditCard:
		cc := models.CreditCard{
			Number: f.Text(models.FieldCardNumber),
			Expiry: f.Text(models.FieldCardExpiry),
			CVC:    f.Text(models.FieldCardCVC),
		}
		if !cardNumberPattern.MatchString(cc.Number) {
			errs.add(models.FieldCardNumber, msgCardNumber)
		}
		if !cardExpiryPattern.MatchString(cc.Expiry) {
			errs.add(models.FieldCardExpiry, msgCardExpiry)
		}
		if !cardCVCPattern.MatchString(cc.CVC) {
			errs.add(models.FieldCardCVC, msgCardCVC)
		}
		return cc
	case models.PaymentDoraPay:
		return models.DoraPay{}
	default:
		return models.CashOnDelivery{}
	}
}

// freeText reads a free-text field and checks its length, encoding and
// markup. The value is returned as typed; nothing is rewritten.
func (v *Validator) freeText(f models.Fields, errs ErrorSet, key string, minRunes int, short string) string {
	s := f.Text(key)
	switch {
	case utf8.RuneCountInString(s) < minRunes:
		errs.add(key, short)
	case !utf8.ValidString(s):
		errs.add(key, msgEncoding)
	case v.hasMarkup(s):
		errs.add(key, msgMarkup)
	}
	return s
}

// hasMarkup reports whether the strict policy would drop anything from s.
// Entities are compared decoded so "&" and "&amp;" read the same.
func (v *Validator) hasMarkup(s string) bool {
	return html.UnescapeString(v.policy.Sanitize(s)) != html.UnescapeString(s)
}

func checkMember(errs ErrorSet, field, value string, set map[string]struct{}, missing, unknown string) {
	if value == "" {
		errs.add(field, missing)
		return
	}
	if _, ok := set[value]; !ok {
		errs.add(field, unknown)
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
