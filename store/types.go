// Package store holds the persistence models of the order service. They
// are the usual mapping source.
package store

import (
	"errors"
	"time"

	"automapper/catalog"
)

// Customer is the user placing orders.
type Customer struct {
	ID         int64
	Email      string
	FullName   string
	Address    *Address
	Tags       []string
	IsActive   bool
	ExternalID string // uuid text
}

// Address is a postal address as stored.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// Order is a transaction made by a customer.
type Order struct {
	ID         int64
	Number     string
	Customer   *Customer
	Status     OrderStatus
	Items      []OrderItem
	Labels     []string
	TotalCents int64
	ExternalID string
	OrderedAt  time.Time
}

// OrderItem is one product line of an order. It snapshots the price at
// the time of purchase.
type OrderItem struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice int64
}

// OrderStatus is the persisted order state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Register adds the store models to cat under their "store." names.
func Register(cat *catalog.Catalog) error {
	return errors.Join(
		cat.Register("store.Customer", Customer{}),
		cat.Register("store.Address", Address{}),
		cat.Register("store.Order", Order{}),
		cat.Register("store.OrderItem", OrderItem{}),
	)
}

// SampleOrder returns a fully populated order.
func SampleOrder() *Order {
	return &Order{
		ID:     1001,
		Number: "SO-1001",
		Customer: &Customer{
			ID:       7,
			Email:    "ada@example.com",
			FullName: "Ada Lovelace",
			Address: &Address{
				Street:     "12 St James's Square",
				City:       "London",
				PostalCode: "SW1Y 4JH",
				Country:    "GB",
			},
			Tags:       []string{"vip"},
			IsActive:   true,
			ExternalID: "6d73e345-ae88-4e9d-a2ed-89f292e94f7b",
		},
		Status: StatusPaid,
		Items: []OrderItem{
			{SKU: "ENG-1", Name: "Difference engine", Quantity: 1, UnitPrice: 170000},
			{SKU: "CRD-9", Name: "Punched cards", Quantity: 200, UnitPrice: 5},
		},
		Labels:     []string{"priority", "gift"},
		TotalCents: 171000,
		ExternalID: "28ed309c-cec7-406c-a442-eef4ef9034ce",
		OrderedAt:  time.Date(1843, time.July, 10, 9, 0, 0, 0, time.UTC),
	}
}
