package model

// Address is a postal address as stored on a property.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Property is a serviced location with its contract details.
type Property struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Service           HospitalityService `json:"service"`
	CollectionType    CollectionType     `json:"collectionType"`
	Phone             string             `json:"phone"`
	Address           *Address           `json:"address"`
	PaymentMethod     PaymentMethod      `json:"paymentMethod"`
	ContractStartDate *DateTime          `json:"contractStartDate"`
}

// Summary strips the contract fields, leaving what a pickup embeds.
func (p Property) Summary() PropertySummary {
	return PropertySummary{
		ID:             p.ID,
		Name:           p.Name,
		Service:        p.Service,
		CollectionType: p.CollectionType,
		Phone:          p.Phone,
		Address:        p.Address,
	}
}

// PropertySummary is the property reference carried inside a Pickup. It has
// no contract or pickup fields, which is what keeps Pickup -> Property from
// being a cycle.
type PropertySummary struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Service        HospitalityService `json:"service"`
	CollectionType CollectionType     `json:"collectionType"`
	Phone          string             `json:"phone"`
	Address        *Address           `json:"address"`
}

// EditablePropertyInfo is the update-property mutation input.
type EditablePropertyInfo struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Service        HospitalityService `json:"service"`
	CollectionType CollectionType     `json:"collectionType"`
	Phone          string             `json:"phone"`
	Address        *Address           `json:"address"`
}
