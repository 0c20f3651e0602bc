package model

import (
	"encoding/json"
	"fmt"
)

// The backend schema defines each of these as a fixed set of uppercase
// codes. Decoding is strict: an unrecognized code fails instead of being
// coerced to a default, so a schema drift shows up as a decode error rather
// than as silently wrong data. A field that is absent entirely stays at the
// type's zero value.

// CollectionType is how cartons leave a property.
type CollectionType string

const (
	CollectionTypePickup  CollectionType = "PICKUP"
	CollectionTypeDropoff CollectionType = "DROPOFF"
	CollectionTypeCourier CollectionType = "COURIER"
)

func (c CollectionType) Valid() bool {
	switch c {
	case CollectionTypePickup, CollectionTypeDropoff, CollectionTypeCourier:
		return true
	}
	return false
}

func (c *CollectionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := CollectionType(s)
	if !v.Valid() {
		return fmt.Errorf("model: unknown collection type %q", s)
	}
	*c = v
	return nil
}

// PickupStatus is the lifecycle state of a scheduled pickup.
type PickupStatus string

const (
	PickupStatusOpen      PickupStatus = "OPEN"
	PickupStatusSubmitted PickupStatus = "SUBMITTED"
	PickupStatusComplete  PickupStatus = "COMPLETE"
	PickupStatusCancelled PickupStatus = "CANCELLED"
)

func (p PickupStatus) Valid() bool {
	switch p {
	case PickupStatusOpen, PickupStatusSubmitted, PickupStatusComplete, PickupStatusCancelled:
		return true
	}
	return false
}

func (p *PickupStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := PickupStatus(s)
	if !v.Valid() {
		return fmt.Errorf("model: unknown pickup status %q", s)
	}
	*p = v
	return nil
}

// HospitalityService is the kind of property being serviced.
type HospitalityService string

const (
	HospitalityServiceHotel          HospitalityService = "HOTEL"
	HospitalityServiceResort         HospitalityService = "RESORT"
	HospitalityServiceVacationRental HospitalityService = "VACATION_RENTAL"
	HospitalityServiceCasino         HospitalityService = "CASINO"
	HospitalityServiceOther          HospitalityService = "OTHER"
)

func (h HospitalityService) Valid() bool {
	switch h {
	case HospitalityServiceHotel, HospitalityServiceResort, HospitalityServiceVacationRental,
		HospitalityServiceCasino, HospitalityServiceOther:
		return true
	}
	return false
}

func (h *HospitalityService) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := HospitalityService(s)
	if !v.Valid() {
		return fmt.Errorf("model: unknown hospitality service %q", s)
	}
	*h = v
	return nil
}

// PaymentMethod is how a property settles its invoices.
type PaymentMethod string

const (
	PaymentMethodACH        PaymentMethod = "ACH"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodCheck      PaymentMethod = "CHECK"
	PaymentMethodInvoice    PaymentMethod = "INVOICE"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodACH, PaymentMethodCreditCard, PaymentMethodCheck, PaymentMethodInvoice:
		return true
	}
	return false
}

func (p *PaymentMethod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := PaymentMethod(s)
	if !v.Valid() {
		return fmt.Errorf("model: unknown payment method %q", s)
	}
	*p = v
	return nil
}
