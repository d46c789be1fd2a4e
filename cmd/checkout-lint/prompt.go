package main

import (
	"github.com/AlecAivazis/survey/v2"

	"dora-eats/internal/checkout"
	"dora-eats/internal/models"
)

type prompter struct {
	fields models.Fields
}

func (p *prompter) input(field, message string) error {
	var v string
	if err := survey.AskOne(&survey.Input{Message: message}, &v); err != nil {
		return err
	}
	p.fields[field] = v
	return nil
}

func (p *prompter) choose(field, message string, choices []models.Choice) (string, error) {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	var idx int
	if err := survey.AskOne(&survey.Select{Message: message, Options: labels}, &idx); err != nil {
		return "", err
	}
	p.fields[field] = choices[idx].ID
	return choices[idx].ID, nil
}

// promptFields walks the checkout form the way the storefront shows it: only
// the fields of the chosen fulfillment and payment variants are asked for.
func promptFields(opts checkout.Options) (models.Fields, error) {
	p := &prompter{fields: models.Fields{}}

	for _, q := range []struct{ field, message string }{
		{models.FieldFullName, "Full name:"},
		{models.FieldEmail, "Email:"},
		{models.FieldPhone, "Phone:"},
	} {
		if err := p.input(q.field, q.message); err != nil {
			return nil, err
		}
	}

	kind, err := p.choose(models.FieldFulfillmentType, "Delivery or pickup?", models.FulfillmentChoices())
	if err != nil {
		return nil, err
	}
	if models.FulfillmentType(kind) == models.FulfillmentDelivery {
		for _, q := range []struct{ field, message string }{
			{models.FieldAddressLine1, "Address line 1:"},
			{models.FieldCity, "City:"},
			{models.FieldPostalCode, "Postal code:"},
		} {
			if err := p.input(q.field, q.message); err != nil {
				return nil, err
			}
		}
	} else {
		if _, err := p.choose(models.FieldPickupLocation, "Pickup location:", opts.PickupLocations); err != nil {
			return nil, err
		}
		if _, err := p.choose(models.FieldPickupTime, "Pickup time:", opts.PickupTimeSlots); err != nil {
			return nil, err
		}
	}

	method, err := p.choose(models.FieldPaymentMethod, "Payment method:", models.PaymentChoices())
	if err != nil {
		return nil, err
	}
	if models.PaymentMethod(method) == models.PaymentCreditCard {
		for _, q := range []struct{ field, message string }{
			{models.FieldCardNumber, "Card number (16 digits):"},
			{models.FieldCardExpiry, "Expiry (MM/YY):"},
		} {
			if err := p.input(q.field, q.message); err != nil {
				return nil, err
			}
		}
		var cvc string
		if err := survey.AskOne(&survey.Password{Message: "CVC:"}, &cvc); err != nil {
			return nil, err
		}
		p.fields[models.FieldCardCVC] = cvc
	}

	var agree bool
	if err := survey.AskOne(&survey.Confirm{Message: "Agree to the terms and conditions?"}, &agree); err != nil {
		return nil, err
	}
	p.fields[models.FieldAgreeToTerms] = agree
	return p.fields, nil
}
