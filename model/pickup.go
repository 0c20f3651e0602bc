package model

// Base carries the fields shared by a stored pickup and a pickup being
// scheduled.
type Base struct {
	CollectionType CollectionType `json:"collectionType"`
	Status         PickupStatus   `json:"status"`
	ReadyDate      DateTime       `json:"readyDate"`
	PickupDate     *DateTime      `json:"pickupDate"`
	Notes          string         `json:"notes"`
}

// Pickup is one scheduled carton collection.
type Pickup struct {
	Base
	ID               string           `json:"id"`
	ConfirmationCode string           `json:"confirmationCode"`
	Cartons          []Carton         `json:"cartons"`
	Property         *PropertySummary `json:"property"`
}

// Carton is one shipping carton included in a pickup.
type Carton struct {
	ID       string          `json:"id"`
	Contents *CartonContents `json:"contents"`
}

// CartonContents describes what a carton holds and how full it is.
type CartonContents struct {
	Product     string `json:"product"`
	PercentFull int    `json:"percentFull"`
}

// ScheduleInput is the schedule-pickup mutation input. PropertyID,
// CollectionType and ReadyDate are required by the backend.
type ScheduleInput struct {
	PropertyID     string         `json:"propertyId"`
	CollectionType CollectionType `json:"collectionType"`
	ReadyDate      DateTime       `json:"readyDate"`
	Notes          string         `json:"notes,omitempty"`
	CartonCount    int            `json:"cartonCount,omitempty"`
}

// ScheduleResult is what schedule-pickup returns: the created pickup plus a
// link to the printable shipping label.
type ScheduleResult struct {
	Pickup   Pickup `json:"pickup"`
	LabelURL URL    `json:"label"`
}
