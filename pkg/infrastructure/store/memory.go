// Package store provides the single in-memory source of truth for the app.
// Every collection lives behind one mutex; mutations are atomic and readers
// get defensive copies, so a snapshot never shows a mutation in progress.
// Nothing is persisted; state is gone on process exit.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

type MemoryStore struct {
	mu sync.Mutex

	currentUser *model.User
	language    model.Language
	onboarded   bool

	brands        []model.MilkBrand
	products      []model.MilkProduct
	addresses     []model.Address
	subscriptions []model.Subscription
	overrides     []model.DailyOverride
	deliveries    []model.Delivery
	customers     []model.Customer
}

var (
	_ model.SessionRepository      = (*MemoryStore)(nil)
	_ model.AddressRepository      = (*MemoryStore)(nil)
	_ model.CatalogRepository      = (*MemoryStore)(nil)
	_ model.SubscriptionRepository = (*MemoryStore)(nil)
	_ model.OverrideRepository     = (*MemoryStore)(nil)
	_ model.DeliveryRepository     = (*MemoryStore)(nil)
	_ model.CustomerRepository     = (*MemoryStore)(nil)
)

// NewMemoryStore builds the store pre-loaded with the milk catalog and the
// demo roster. Construct once at startup and hand the same instance to
// every consumer.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		language:  model.LanguageEnglish,
		brands:    seedBrands(),
		products:  seedProducts(),
		customers: seedCustomers(),
	}
}

func (s *MemoryStore) NextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// --- session ---

func (s *MemoryStore) SetCurrentUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.currentUser = nil
		return
	}
	clone := *user
	s.currentUser = &clone
}

func (s *MemoryStore) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	clone := *s.currentUser
	return &clone
}

func (s *MemoryStore) SetLanguage(lang model.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

func (s *MemoryStore) Language() model.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *MemoryStore) SetOnboarded(onboarded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarded = onboarded
}

func (s *MemoryStore) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarded
}

// --- addresses ---

func (s *MemoryStore) AddAddress(address model.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses = append(s.addresses, address)
}

func (s *MemoryStore) Addresses() []model.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}

// --- catalog ---

func (s *MemoryStore) Brands() []model.MilkBrand {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.MilkBrand, len(s.brands))
	copy(out, s.brands)
	return out
}

func (s *MemoryStore) Products() []model.MilkProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.MilkProduct, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemoryStore) FindProduct(id string) (model.MilkProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.MilkProduct{}, model.ErrProductNotFound
}

// --- subscriptions ---

func (s *MemoryStore) AddSubscription(sub model.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscriptions = append(s.subscriptions, cloneSubscription(sub))
}

func (s *MemoryStore) UpdateSubscription(id string, patch model.SubscriptionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subscriptions {
		if s.subscriptions[i].ID != id {
			continue
		}
		applySubscriptionPatch(&s.subscriptions[i], patch)
		return nil
	}
	return model.ErrSubscriptionNotFound
}

func (s *MemoryStore) Subscriptions() []model.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		out = append(out, cloneSubscription(sub))
	}
	return out
}

func (s *MemoryStore) PrimarySubscription(customerID string) (model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subscriptions {
		if sub.CustomerID == customerID && sub.IsActive {
			return cloneSubscription(sub), nil
		}
	}
	return model.Subscription{}, model.ErrNoActiveSubscription
}

func applySubscriptionPatch(sub *model.Subscription, patch model.SubscriptionPatch) {
	if patch.AddressID != nil {
		sub.AddressID = *patch.AddressID
	}
	if patch.MilkProductID != nil {
		sub.MilkProductID = *patch.MilkProductID
	}
	if patch.QuantityPerDeliveryML != nil {
		sub.QuantityPerDeliveryML = *patch.QuantityPerDeliveryML
	}
	if patch.DaysOfWeek != nil {
		sub.DaysOfWeek = append([]time.Weekday(nil), patch.DaysOfWeek...)
	}
	if patch.EndDate != nil {
		sub.EndDate = *patch.EndDate
	}
	if patch.IsActive != nil {
		sub.IsActive = *patch.IsActive
	}
	if patch.PaymentMethod != nil {
		sub.PaymentMethod = *patch.PaymentMethod
	}
}

func cloneSubscription(sub model.Subscription) model.Subscription {
	clone := sub
	clone.DaysOfWeek = append([]time.Weekday(nil), sub.DaysOfWeek...)
	return clone
}

// --- daily overrides ---

func (s *MemoryStore) UpsertOverride(override model.DailyOverride) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.overrides {
		if s.overrides[i].SubscriptionID == override.SubscriptionID && s.overrides[i].Date == override.Date {
			s.overrides[i] = cloneOverride(override)
			return
		}
	}
	s.overrides = append(s.overrides, cloneOverride(override))
}

func (s *MemoryStore) Overrides() []model.DailyOverride {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.DailyOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		out = append(out, cloneOverride(o))
	}
	return out
}

func (s *MemoryStore) OverrideFor(subscriptionID string, date model.Date) (model.DailyOverride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.overrides {
		if o.SubscriptionID == subscriptionID && o.Date == date {
			return cloneOverride(o), true
		}
	}
	return model.DailyOverride{}, false
}

func cloneOverride(o model.DailyOverride) model.DailyOverride {
	clone := o
	if o.QuantityOverrideML != nil {
		qty := *o.QuantityOverrideML
		clone.QuantityOverrideML = &qty
	}
	return clone
}

// --- deliveries ---

func (s *MemoryStore) AddDelivery(delivery model.Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveries = append(s.deliveries, cloneDelivery(delivery))
}

func (s *MemoryStore) UpdateDelivery(id string, patch model.DeliveryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deliveries {
		if s.deliveries[i].ID != id {
			continue
		}
		applyDeliveryPatch(&s.deliveries[i], patch)
		return nil
	}
	return model.ErrDeliveryNotFound
}

func (s *MemoryStore) Deliveries() []model.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Delivery, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		out = append(out, cloneDelivery(d))
	}
	return out
}

func (s *MemoryStore) FindDelivery(id string) (model.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deliveries {
		if d.ID == id {
			return cloneDelivery(d), nil
		}
	}
	return model.Delivery{}, model.ErrDeliveryNotFound
}

func applyDeliveryPatch(d *model.Delivery, patch model.DeliveryPatch) {
	if patch.QuantityDeliveredML != nil {
		d.QuantityDeliveredML = *patch.QuantityDeliveredML
	}
	if patch.TotalPaise != nil {
		d.TotalPaise = *patch.TotalPaise
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.DeliveredAt != nil {
		at := *patch.DeliveredAt
		d.DeliveredAt = &at
	}
}

func cloneDelivery(d model.Delivery) model.Delivery {
	clone := d
	if d.DeliveredAt != nil {
		at := *d.DeliveredAt
		clone.DeliveredAt = &at
	}
	return clone
}

// --- customers ---

func (s *MemoryStore) AddCustomer(customer model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, cloneCustomer(customer))
}

func (s *MemoryStore) RemoveCustomer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		s.customers = append(s.customers[:i], s.customers[i+1:]...)
		return nil
	}
	return model.ErrCustomerNotFound
}

func (s *MemoryStore) ReplaceCustomers(customers []model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, cloneCustomer(c))
	}
	s.customers = out
}

func (s *MemoryStore) Customers() []model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, cloneCustomer(c))
	}
	return out
}

func (s *MemoryStore) FindCustomer(id string) (model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return model.Customer{}, model.ErrCustomerNotFound
}

func (s *MemoryStore) UpdateCustomer(customer model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return model.ErrCustomerNotFound
}

func cloneCustomer(c model.Customer) model.Customer {
	clone := c
	if c.Subscription != nil {
		sub := cloneSubscription(*c.Subscription)
		clone.Subscription = &sub
	}
	return clone
}
