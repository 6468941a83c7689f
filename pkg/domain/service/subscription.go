package service

import (
	"errors"
	"time"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

var (
	ErrInvalidQuantity = errors.New("quantity per delivery must be positive")
	ErrNoDeliveryDays  = errors.New("at least one delivery day is required")
)

// Daily override quantities are clamped to the range the order screen
// offers: half a liter up to five liters.
const (
	MinOverrideML = 500
	MaxOverrideML = 5000
)

type SubscriptionService interface {
	// Subscribe creates a plan. Any existing active plan for the same
	// customer is deactivated first, so the newest subscription is always
	// the customer's primary one; older records stay in the collection as
	// history.
	Subscribe(input SubscribeInput) (*model.Subscription, error)
	// ChangePlan merges the patch into the subscription with the given id.
	ChangePlan(id string, patch model.SubscriptionPatch) error
	Primary(customerID string) (model.Subscription, error)
	// PauseDay skips delivery for one date.
	PauseDay(subscriptionID string, date model.Date) error
	// OverrideDayQuantity changes the delivered amount for one date only,
	// clamped to the allowed range. It also clears a pause for that date.
	OverrideDayQuantity(subscriptionID string, date model.Date, quantityML int64) error
}

type SubscribeInput struct {
	CustomerID    string
	AddressID     string
	MilkProductID string
	QuantityML    int64
	DaysOfWeek    []time.Weekday
	StartDate     model.Date
	PaymentMethod model.PaymentMethod
}

func NewSubscriptionService(subs model.SubscriptionRepository, overrides model.OverrideRepository, catalog model.CatalogRepository, dispatcher EventDispatcher) SubscriptionService {
	return &subscriptionService{
		subs:       subs,
		overrides:  overrides,
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

type subscriptionService struct {
	subs       model.SubscriptionRepository
	overrides  model.OverrideRepository
	catalog    model.CatalogRepository
	dispatcher EventDispatcher
}

func (s *subscriptionService) Subscribe(input SubscribeInput) (*model.Subscription, error) {
	if input.QuantityML <= 0 {
		return nil, ErrInvalidQuantity
	}
	if len(input.DaysOfWeek) == 0 {
		return nil, ErrNoDeliveryDays
	}
	if _, err := s.catalog.FindProduct(input.MilkProductID); err != nil {
		return nil, err
	}

	// Newest plan wins: retire the current active plan before appending.
	inactive := false
	if current, err := s.subs.PrimarySubscription(input.CustomerID); err == nil {
		if err := s.subs.UpdateSubscription(current.ID, model.SubscriptionPatch{IsActive: &inactive}); err != nil {
			return nil, err
		}
	}

	id, err := s.subs.NextID()
	if err != nil {
		return nil, err
	}

	start := input.StartDate
	if start == "" {
		start = model.Today()
	}

	sub := model.Subscription{
		ID:                    id,
		CustomerID:            input.CustomerID,
		AddressID:             input.AddressID,
		MilkProductID:         input.MilkProductID,
		QuantityPerDeliveryML: input.QuantityML,
		DaysOfWeek:            append([]time.Weekday(nil), input.DaysOfWeek...),
		StartDate:             start,
		IsActive:              true,
		PaymentMethod:         input.PaymentMethod,
	}

	s.subs.AddSubscription(sub)

	_ = s.dispatcher.Dispatch(model.SubscriptionCreated{
		SubscriptionID: id,
		CustomerID:     input.CustomerID,
		MilkProductID:  input.MilkProductID,
	})
	return &sub, nil
}

func (s *subscriptionService) ChangePlan(id string, patch model.SubscriptionPatch) error {
	if patch.QuantityPerDeliveryML != nil && *patch.QuantityPerDeliveryML <= 0 {
		return ErrInvalidQuantity
	}
	if patch.MilkProductID != nil {
		if _, err := s.catalog.FindProduct(*patch.MilkProductID); err != nil {
			return err
		}
	}

	if err := s.subs.UpdateSubscription(id, patch); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.SubscriptionChanged{SubscriptionID: id})
	return nil
}

func (s *subscriptionService) Primary(customerID string) (model.Subscription, error) {
	return s.subs.PrimarySubscription(customerID)
}

func (s *subscriptionService) PauseDay(subscriptionID string, date model.Date) error {
	if _, err := date.Time(); err != nil {
		return err
	}
	if err := s.subscriptionExists(subscriptionID); err != nil {
		return err
	}

	zero := int64(0)
	s.overrides.UpsertOverride(model.DailyOverride{
		ID:                 overrideID(subscriptionID, date),
		SubscriptionID:     subscriptionID,
		Date:               date,
		QuantityOverrideML: &zero,
		IsPaused:           true,
	})

	_ = s.dispatcher.Dispatch(model.OverrideApplied{SubscriptionID: subscriptionID, Date: date, Paused: true})
	return nil
}

func (s *subscriptionService) OverrideDayQuantity(subscriptionID string, date model.Date, quantityML int64) error {
	if _, err := date.Time(); err != nil {
		return err
	}
	if err := s.subscriptionExists(subscriptionID); err != nil {
		return err
	}

	if quantityML < MinOverrideML {
		quantityML = MinOverrideML
	}
	if quantityML > MaxOverrideML {
		quantityML = MaxOverrideML
	}

	s.overrides.UpsertOverride(model.DailyOverride{
		ID:                 overrideID(subscriptionID, date),
		SubscriptionID:     subscriptionID,
		Date:               date,
		QuantityOverrideML: &quantityML,
		IsPaused:           false,
	})

	_ = s.dispatcher.Dispatch(model.OverrideApplied{SubscriptionID: subscriptionID, Date: date, Paused: false})
	return nil
}

func (s *subscriptionService) subscriptionExists(id string) error {
	for _, sub := range s.subs.Subscriptions() {
		if sub.ID == id {
			return nil
		}
	}
	return model.ErrSubscriptionNotFound
}

// overrideID is deterministic so that re-submitting the same day's change
// replaces rather than multiplies records.
func overrideID(subscriptionID string, date model.Date) string {
	return "override-" + subscriptionID + "-" + string(date)
}
