package model

type DeliverySlot string

const (
	SlotEarlyMorning DeliverySlot = "5-6"
	SlotMorning      DeliverySlot = "6-7"
	SlotLateMorning  DeliverySlot = "7-8"
	SlotCustom       DeliverySlot = "custom"
)

type Address struct {
	ID           string       `json:"id"`
	Flat         string       `json:"flat"`
	Building     string       `json:"building"`
	Area         string       `json:"area"`
	Landmark     string       `json:"landmark"`
	Pincode      string       `json:"pincode"`
	City         string       `json:"city"`
	DeliverySlot DeliverySlot `json:"deliverySlot"`
	// CustomTime carries the explicit time string when DeliverySlot is
	// SlotCustom, empty otherwise.
	CustomTime string `json:"customTime,omitempty"`
	IsDefault  bool   `json:"isDefault"`
}

// AddressRepository appends and lists a consumer's delivery addresses.
// It performs no deduplication and does not enforce a unique default;
// both are left to callers.
type AddressRepository interface {
	NextID() (string, error)
	AddAddress(address Address)
	Addresses() []Address
}
