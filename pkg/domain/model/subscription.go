package model

import (
	"errors"
	"time"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNoActiveSubscription = errors.New("customer has no active subscription")
)

type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayUPI          PaymentMethod = "upi"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayCard         PaymentMethod = "card"
)

// Subscription is a recurring delivery plan: which milk, how much per
// delivery, and on which weekdays. Quantities are milliliters; prices are
// paise, so half-liter steps and rupee amounts stay exact.
type Subscription struct {
	ID                    string         `json:"id"`
	CustomerID            string         `json:"customerId"`
	AddressID             string         `json:"addressId"`
	MilkProductID         string         `json:"milkProductId"`
	QuantityPerDeliveryML int64          `json:"quantityPerDeliveryMl"`
	DaysOfWeek            []time.Weekday `json:"daysOfWeek"`
	StartDate             Date           `json:"startDate"`
	EndDate               Date           `json:"endDate,omitempty"`
	IsActive              bool           `json:"isActive"`
	PaymentMethod         PaymentMethod  `json:"paymentMethod"`
}

func (s Subscription) DeliversOn(day time.Weekday) bool {
	for _, d := range s.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// SubscriptionPatch carries a partial update; nil fields are left untouched.
type SubscriptionPatch struct {
	AddressID             *string
	MilkProductID         *string
	QuantityPerDeliveryML *int64
	DaysOfWeek            []time.Weekday
	EndDate               *Date
	IsActive              *bool
	PaymentMethod         *PaymentMethod
}

// DailyOverride is a one-day exception to a subscription: pause delivery or
// change the quantity for that date only. At most one override exists per
// (subscription, date) pair; writes for an existing pair replace it.
type DailyOverride struct {
	ID                 string `json:"id"`
	SubscriptionID     string `json:"subscriptionId"`
	Date               Date   `json:"date"`
	QuantityOverrideML *int64 `json:"quantityOverrideMl,omitempty"`
	IsPaused           bool   `json:"isPaused"`
}

type SubscriptionRepository interface {
	NextID() (string, error)
	AddSubscription(sub Subscription)
	UpdateSubscription(id string, patch SubscriptionPatch) error
	Subscriptions() []Subscription
	// PrimarySubscription resolves "the" plan for a customer: the
	// first-inserted active subscription wins when several exist.
	PrimarySubscription(customerID string) (Subscription, error)
}

type OverrideRepository interface {
	// UpsertOverride replaces the override for the same
	// (SubscriptionID, Date) in place, or appends when none exists.
	UpsertOverride(override DailyOverride)
	Overrides() []DailyOverride
	OverrideFor(subscriptionID string, date Date) (DailyOverride, bool)
}
