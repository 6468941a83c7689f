package model

import "errors"

var ErrCustomerNotFound = errors.New("customer not found")

// Customer is the owner-side roster entry: a denormalized view of one
// household and its plan. The embedded subscription is the roster's own
// copy; removing a customer does not touch the subscription collection.
type Customer struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	AddressID    string        `json:"addressId"`
	Subscription *Subscription `json:"subscription,omitempty"`
	IsNewUser    bool          `json:"isNewUser,omitempty"`
}

type CustomerRepository interface {
	NextID() (string, error)
	AddCustomer(customer Customer)
	RemoveCustomer(id string) error
	ReplaceCustomers(customers []Customer)
	Customers() []Customer
	FindCustomer(id string) (Customer, error)
	UpdateCustomer(customer Customer) error
}
