package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
)

// ParseFulfillmentType accepts only the known fulfillment tags.
func ParseFulfillmentType(s string) (FulfillmentType, bool) {
	switch t := FulfillmentType(s); t {
	case FulfillmentDelivery, FulfillmentPickup:
		return t, true
	}
	return "", false
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDoraPay        PaymentMethod = "dora_pay"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// ParsePaymentMethod accepts only the known payment tags.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch m := PaymentMethod(s); m {
	case PaymentCreditCard, PaymentDoraPay, PaymentCashOnDelivery:
		return m, true
	}
	return "", false
}

// Choice is one entry of an enumerated option list.
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FulfillmentChoices lists the fulfillment types in display order.
func FulfillmentChoices() []Choice {
	return []Choice{
		{ID: string(FulfillmentDelivery), Label: "Delivery"},
		{ID: string(FulfillmentPickup), Label: "Pickup"},
	}
}

// PaymentChoices lists the payment methods in display order.
func PaymentChoices() []Choice {
	return []Choice{
		{ID: string(PaymentCreditCard), Label: "Credit/Debit Card"},
		{ID: string(PaymentDoraPay), Label: "DoraPay (Instant Gadget Points!)"},
		{ID: string(PaymentCashOnDelivery), Label: "Cash on Delivery/Pickup"},
	}
}

type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Fulfillment is either Delivery or Pickup.
type Fulfillment interface {
	Kind() FulfillmentType
	fulfillment()
}

type Delivery struct {
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
}

func (Delivery) Kind() FulfillmentType { return FulfillmentDelivery }
func (Delivery) fulfillment()          {}

type Pickup struct {
	LocationID string `json:"locationId"`
	TimeSlot   string `json:"timeSlot"`
}

func (Pickup) Kind() FulfillmentType { return FulfillmentPickup }
func (Pickup) fulfillment()          {}

// Payment is one of CreditCard, DoraPay or CashOnDelivery.
type Payment interface {
	Method() PaymentMethod
	payment()
}

type CreditCard struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc,omitempty"`
}

func (CreditCard) Method() PaymentMethod { return PaymentCreditCard }
func (CreditCard) payment()              {}

type DoraPay struct{}

func (DoraPay) Method() PaymentMethod { return PaymentDoraPay }
func (DoraPay) payment()              {}

type CashOnDelivery struct{}

func (CashOnDelivery) Method() PaymentMethod { return PaymentCashOnDelivery }
func (CashOnDelivery) payment()              {}

// OrderRequest is a validated checkout submission. It only ever carries the
// selected fulfillment and payment variants.
type OrderRequest struct {
	Contact       Contact
	Fulfillment   Fulfillment
	Payment       Payment
	AgreedToTerms bool
}

// Redacted returns a copy safe to log or echo back: the card number keeps its
// last four digits and the CVC is dropped.
func (o OrderRequest) Redacted() OrderRequest {
	if cc, ok := o.Payment.(CreditCard); ok {
		o.Payment = CreditCard{Number: maskCardNumber(cc.Number), Expiry: cc.Expiry}
	}
	return o
}

func maskCardNumber(n string) string {
	if len(n) <= 4 {
		return strings.Repeat("*", len(n))
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}

type orderRequestJSON struct {
	Contact       Contact         `json:"contact"`
	Fulfillment   json.RawMessage `json:"fulfillment"`
	Payment       json.RawMessage `json:"payment"`
	AgreedToTerms bool            `json:"agreedToTerms"`
}

func (o OrderRequest) MarshalJSON() ([]byte, error) {
	w := orderRequestJSON{Contact: o.Contact, AgreedToTerms: o.AgreedToTerms}
	var err error
	if o.Fulfillment != nil {
		if w.Fulfillment, err = tagged("type", string(o.Fulfillment.Kind()), o.Fulfillment); err != nil {
			return nil, err
		}
	}
	if o.Payment != nil {
		if w.Payment, err = tagged("method", string(o.Payment.Method()), o.Payment); err != nil {
			return nil, err
		}
	}
	return json.Marshal(w)
}

func (o *OrderRequest) UnmarshalJSON(b []byte) error {
	var w orderRequestJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*o = OrderRequest{Contact: w.Contact, AgreedToTerms: w.AgreedToTerms}

	if present(w.Fulfillment) {
		var tag struct {
			Type FulfillmentType `json:"type"`
		}
		if err := json.Unmarshal(w.Fulfillment, &tag); err != nil {
			return err
		}
		switch tag.Type {
		case FulfillmentDelivery:
			var d Delivery
			if err := json.Unmarshal(w.Fulfillment, &d); err != nil {
				return err
			}
			o.Fulfillment = d
		case FulfillmentPickup:
			var p Pickup
			if err := json.Unmarshal(w.Fulfillment, &p); err != nil {
				return err
			}
			o.Fulfillment = p
		default:
			return fmt.Errorf("unknown fulfillment type %q", tag.Type)
		}
	}

	if present(w.Payment) {
		var tag struct {
			Method PaymentMethod `json:"method"`
		}
		if err := json.Unmarshal(w.Payment, &tag); err != nil {
			return err
		}
		switch tag.Method {
		case PaymentCreditCard:
			var cc CreditCard
			if err := json.Unmarshal(w.Payment, &cc); err != nil {
				return err
			}
			o.Payment = cc
		case PaymentDoraPay:
			o.Payment = DoraPay{}
		case PaymentCashOnDelivery:
			o.Payment = CashOnDelivery{}
		default:
			return fmt.Errorf("unknown payment method %q", tag.Method)
		}
	}
	return nil
}

// tagged encodes v as a JSON object with key set to tag.
func tagged(key, tag string, v any) (json.RawMessage, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}
	obj[key], _ = json.Marshal(tag)
	return json.Marshal(obj)
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
