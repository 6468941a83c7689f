package model

import (
	"errors"
	"time"
)

var ErrDeliveryNotFound = errors.New("delivery not found")

type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "pending"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
	DeliveryMissed         DeliveryStatus = "missed"
)

// Delivery is a historical fact: what actually went out on a given day,
// at the price in force at the time. Distinct from the plan (Subscription)
// and from a one-day plan exception (DailyOverride).
type Delivery struct {
	ID                  string         `json:"id"`
	CustomerID          string         `json:"customerId"`
	Date                Date           `json:"date"`
	MilkProductID       string         `json:"milkProductId"`
	QuantityDeliveredML int64          `json:"quantityDeliveredMl"`
	PricePerLiterPaise  int64          `json:"pricePerLiterPaise"`
	TotalPaise          int64          `json:"totalPaise"`
	Status              DeliveryStatus `json:"status"`
	DeliveredAt         *time.Time     `json:"deliveredAt,omitempty"`
}

type DeliveryPatch struct {
	QuantityDeliveredML *int64
	TotalPaise          *int64
	Status              *DeliveryStatus
	DeliveredAt         *time.Time
}

type DeliveryRepository interface {
	NextID() (string, error)
	AddDelivery(delivery Delivery)
	UpdateDelivery(id string, patch DeliveryPatch) error
	Deliveries() []Delivery
	FindDelivery(id string) (Delivery, error)
}
