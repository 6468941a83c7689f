package model

type SessionStarted struct {
	UserID string
	Phone  string
	Role   UserRole
}

func (e SessionStarted) Type() string { return "SessionStarted" }

type SessionEnded struct {
	UserID string
}

func (e SessionEnded) Type() string { return "SessionEnded" }

type AddressAdded struct {
	AddressID string
	City      string
}

func (e AddressAdded) Type() string { return "AddressAdded" }

type SubscriptionCreated struct {
	SubscriptionID string
	CustomerID     string
	MilkProductID  string
}

func (e SubscriptionCreated) Type() string { return "SubscriptionCreated" }

type SubscriptionChanged struct {
	SubscriptionID string
}

func (e SubscriptionChanged) Type() string { return "SubscriptionChanged" }

type OverrideApplied struct {
	SubscriptionID string
	Date           Date
	Paused         bool
}

func (e OverrideApplied) Type() string { return "OverrideApplied" }

type DeliveryStatusChanged struct {
	DeliveryID string
	CustomerID string
	Status     DeliveryStatus
}

func (e DeliveryStatusChanged) Type() string { return "DeliveryStatusChanged" }

type CustomerAdded struct {
	CustomerID string
	Name       string
}

func (e CustomerAdded) Type() string { return "CustomerAdded" }

type CustomerRemoved struct {
	CustomerID string
}

func (e CustomerRemoved) Type() string { return "CustomerRemoved" }
