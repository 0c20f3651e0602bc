// Package catalog is the static registry of every GraphQL operation the
// GreenLoop backend supports: the hand-written document for each call and
// the shape its result comes back in.
package catalog

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Operation identifies one server call.
type Operation string

const (
	LogIn                   Operation = "LogIn"
	ImpactStatsByPropertyID Operation = "ImpactStatsByPropertyId"
	UserByID                Operation = "UserById"
	PropertiesByUserID      Operation = "PropertiesByUserId"
	PaymentsByPropertyID    Operation = "PaymentsByPropertyId"
	PickupsByPropertyID     Operation = "PickupsByPropertyId"
	SchedulePickup          Operation = "SchedulePickup"
	CancelPickup            Operation = "CancelPickup"
	UpdateUserProfile       Operation = "UpdateUserProfile"
	UpdateProperty          Operation = "UpdateProperty"
)

// Nesting says how deeply the payload sits under the top-level "data" key.
// The backend wraps query results in an extra object named after the query
// method; the schedule-pickup mutation is the one call that does not.
type Nesting int

const (
	// NestingFlat: data.<operationName> is the payload.
	NestingFlat Nesting = iota
	// NestingNested: data.<operationName>.<resultKey> is the payload.
	NestingNested
)

// Doc is one catalog entry. A zero Doc means the operation is not wired.
type Doc struct {
	Name     string
	Document string
	Nesting  Nesting
}

func (d Doc) IsZero() bool {
	return d.Document == ""
}

var docs = map[Operation]Doc{
	LogIn: {
		Name:    "LogIn",
		Nesting: NestingNested,
		Document: `query LogIn($input: LogInInput!) {
  logIn(input: $input) {
    user {
      id
      firstName
      lastName
      title
      email
      phone
      company
    }
  }
}`,
	},
	ImpactStatsByPropertyID: {
		Name:    "ImpactStatsByPropertyId",
		Nesting: NestingNested,
		Document: `query ImpactStatsByPropertyId($input: ImpactStatsByPropertyIdInput!) {
  impactStatsByPropertyId(input: $input) {
    impactStats {
      propertyId
      pickupsCompleted
      cartonsCollected
      soapRecycled
      bottleAmenitiesRecycled
      peopleServed
    }
  }
}`,
	},
	UserByID: {
		Name:    "UserById",
		Nesting: NestingNested,
		Document: `query UserById($input: UserByIdInput!) {
  userById(input: $input) {
    user {
      id
      firstName
      lastName
      title
      email
      phone
      company
    }
  }
}`,
	},
	PropertiesByUserID: {
		Name:    "PropertiesByUserId",
		Nesting: NestingNested,
		Document: `query PropertiesByUserId($input: PropertiesByUserIdInput!) {
  propertiesByUserId(input: $input) {
    properties {
      id
      name
      service
      collectionType
      phone
      paymentMethod
      contractStartDate
      address {
        line1
        line2
        city
        state
        postalCode
        country
      }
    }
  }
}`,
	},
	PaymentsByPropertyID: {
		Name:    "PaymentsByPropertyId",
		Nesting: NestingNested,
		Document: `query PaymentsByPropertyId($input: PaymentsByPropertyIdInput!) {
  paymentsByPropertyId(input: $input) {
    payments {
      id
      amount
      date
      method
      invoiceCode
    }
  }
}`,
	},
	PickupsByPropertyID: {
		Name:    "PickupsByPropertyId",
		Nesting: NestingNested,
		Document: `query PickupsByPropertyId($input: PickupsByPropertyIdInput!) {
  pickupsByPropertyId(input: $input) {
    pickups {
      id
      confirmationCode
      collectionType
      status
      readyDate
      pickupDate
      notes
      cartons {
        id
        contents {
          product
          percentFull
        }
      }
      property {
        id
        name
        service
        collectionType
        phone
        address {
          line1
          line2
          city
          state
          postalCode
          country
        }
      }
    }
  }
}`,
	},
	SchedulePickup: {
		Name:    "SchedulePickup",
		Nesting: NestingFlat,
		Document: `mutation SchedulePickup($input: SchedulePickupInput!) {
  schedulePickup(input: $input) {
    pickup {
      id
      confirmationCode
      collectionType
      status
      readyDate
      pickupDate
      notes
      cartons {
        id
        contents {
          product
          percentFull
        }
      }
      property {
        id
        name
        service
        collectionType
        phone
        address {
          line1
          line2
          city
          state
          postalCode
          country
        }
      }
    }
    label
  }
}`,
	},
	CancelPickup: {
		Name:    "CancelPickup",
		Nesting: NestingNested,
		Document: `mutation CancelPickup($input: CancelPickupInput!) {
  cancelPickup(input: $input) {
    pickup {
      id
      confirmationCode
      collectionType
      status
      readyDate
      pickupDate
      notes
    }
  }
}`,
	},
	UpdateUserProfile: {
		Name:    "UpdateUserProfile",
		Nesting: NestingNested,
		Document: `mutation UpdateUserProfile($input: UpdateUserProfileInput!) {
  updateUserProfile(input: $input) {
    user {
      id
      firstName
      lastName
      title
      email
      phone
      company
    }
  }
}`,
	},
	UpdateProperty: {
		Name:    "UpdateProperty",
		Nesting: NestingNested,
		Document: `mutation UpdateProperty($input: UpdatePropertyInput!) {
  updateProperty(input: $input) {
    property {
      id
      name
      service
      collectionType
      phone
      paymentMethod
      contractStartDate
      address {
        line1
        line2
        city
        state
        postalCode
        country
      }
    }
  }
}`,
	},
}

// Lookup returns the catalog entry for op. Unknown operations return a zero
// Doc; callers surface that as their not-implemented error.
func Lookup(op Operation) Doc {
	return docs[op]
}

// Operations lists every cataloged operation.
func Operations() []Operation {
	ops := make([]Operation, 0, len(docs))
	for op := range docs {
		ops = append(ops, op)
	}
	return ops
}

// Validate parses every document and returns an error for the first one that
// is not syntactically valid GraphQL. The documents are hand-written, so
// this is the guard against shipping a typo.
func Validate() error {
	for op, doc := range docs {
		if _, err := parser.ParseQuery(&ast.Source{Name: string(op), Input: doc.Document}); err != nil {
			return fmt.Errorf("catalog: %s: %w", op, err)
		}
	}
	return nil
}
