package service

import (
	"errors"
	"strings"
	"time"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

var ErrCustomerFieldsMissing = errors.New("customer name and phone are required")

// defaultProductID is the plan new roster customers start on: one liter of
// cow milk, every day.
const (
	defaultProductID  = "1"
	defaultQuantityML = 1000
)

type RosterService interface {
	// AddCustomer provisions a roster entry with the default daily plan,
	// the way the owner's quick-add flow does.
	AddCustomer(name, phone string) (*model.Customer, error)
	RemoveCustomer(id string) error
	// PauseCustomer and ResumeCustomer toggle the roster entry's embedded
	// plan without touching the subscription collection.
	PauseCustomer(id string) error
	ResumeCustomer(id string) error
	Search(query string) []model.Customer
}

func NewRosterService(customers model.CustomerRepository, dispatcher EventDispatcher) RosterService {
	return &rosterService{customers: customers, dispatcher: dispatcher}
}

type rosterService struct {
	customers  model.CustomerRepository
	dispatcher EventDispatcher
}

func (s *rosterService) AddCustomer(name, phone string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, ErrCustomerFieldsMissing
	}

	id, err := s.customers.NextID()
	if err != nil {
		return nil, err
	}

	customer := model.Customer{
		ID:        id,
		UserID:    id,
		Name:      name,
		Phone:     phone,
		AddressID: id,
		IsNewUser: true,
		Subscription: &model.Subscription{
			ID:                    "s-" + id,
			CustomerID:            id,
			AddressID:             id,
			MilkProductID:         defaultProductID,
			QuantityPerDeliveryML: defaultQuantityML,
			DaysOfWeek: []time.Weekday{
				time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			},
			StartDate:     model.Today(),
			IsActive:      true,
			PaymentMethod: model.PayCash,
		},
	}

	s.customers.AddCustomer(customer)

	_ = s.dispatcher.Dispatch(model.CustomerAdded{CustomerID: id, Name: name})
	return &customer, nil
}

func (s *rosterService) RemoveCustomer(id string) error {
	if err := s.customers.RemoveCustomer(id); err != nil {
		return err
	}
	_ = s.dispatcher.Dispatch(model.CustomerRemoved{CustomerID: id})
	return nil
}

func (s *rosterService) PauseCustomer(id string) error {
	return s.setActive(id, false)
}

func (s *rosterService) ResumeCustomer(id string) error {
	return s.setActive(id, true)
}

func (s *rosterService) setActive(id string, active bool) error {
	customer, err := s.customers.FindCustomer(id)
	if err != nil {
		return err
	}
	if customer.Subscription == nil {
		return model.ErrNoActiveSubscription
	}
	if customer.Subscription.IsActive == active {
		return nil
	}

	customer.Subscription.IsActive = active
	return s.customers.UpdateCustomer(customer)
}

func (s *rosterService) Search(query string) []model.Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	all := s.customers.Customers()
	if query == "" {
		return all
	}

	var matched []model.Customer
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), query) {
			matched = append(matched, c)
		}
	}
	return matched
}
