// Package warehouse holds the read models the fulfilment side works with.
// They are the usual mapping destination.
package warehouse

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"automapper/catalog"
)

// Address is a shipping address.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// Customer is the customer as shown on a pick list.
type Customer struct {
	ID          int64
	Email       string
	DisplayName string
	Address     Address
	Tags        []string
	ExternalID  uuid.UUID `automap:"-"`
}

// Order is the fulfilment view of an order.
type Order struct {
	ID         int64
	Number     string
	Customer   Customer
	Status     string
	Lines      []OrderLine
	ItemCount  int
	Tags       string
	TotalCents int64
	ExternalID uuid.UUID
	OrderedAt  time.Time
	Picker     string
}

// OrderLine is one line to pick.
type OrderLine struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice int64
}

// Register adds the warehouse models to cat under their "warehouse." names.
func Register(cat *catalog.Catalog) error {
	return errors.Join(
		cat.Register("warehouse.Address", Address{}),
		cat.Register("warehouse.Customer", Customer{}),
		cat.Register("warehouse.Order", Order{}),
		cat.Register("warehouse.OrderLine", OrderLine{}),
	)
}
