package model

// ImpactStats is the recycling impact rollup for one property. Weights are
// in pounds.
type ImpactStats struct {
	PropertyID              string  `json:"propertyId"`
	PickupsCompleted        int     `json:"pickupsCompleted"`
	CartonsCollected        int     `json:"cartonsCollected"`
	SoapRecycled            float64 `json:"soapRecycled"`
	BottleAmenitiesRecycled float64 `json:"bottleAmenitiesRecycled"`
	PeopleServed            int     `json:"peopleServed"`
}
