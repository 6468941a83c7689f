package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

func testSubscription(id, customerID string) model.Subscription {
	return model.Subscription{
		ID:                    id,
		CustomerID:            customerID,
		AddressID:             "a1",
		MilkProductID:         "1",
		QuantityPerDeliveryML: 1000,
		DaysOfWeek:            []time.Weekday{time.Monday, time.Wednesday},
		StartDate:             "2024-06-01",
		IsActive:              true,
		PaymentMethod:         model.PayCash,
	}
}

func TestSeedData(t *testing.T) {
	s := NewMemoryStore()

	assert.Len(t, s.Brands(), 2)
	assert.Len(t, s.Customers(), 5)
	assert.Equal(t, model.LanguageEnglish, s.Language())
	assert.False(t, s.Onboarded())
	assert.Nil(t, s.CurrentUser())

	products := s.Products()
	require.Len(t, products, 4)
	cow, err := s.FindProduct("1")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), cow.PricePerLiterPaise)

	_, err = s.FindProduct("no-such-milk")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestSessionSlots(t *testing.T) {
	s := NewMemoryStore()

	s.SetCurrentUser(&model.User{ID: "u1", Phone: "9876543210", Role: model.RoleConsumer})
	require.NotNil(t, s.CurrentUser())

	// The onboarded flag is independent of the user on purpose.
	s.SetOnboarded(true)
	s.SetCurrentUser(nil)
	assert.Nil(t, s.CurrentUser())
	assert.True(t, s.Onboarded())
}

func TestUserSnapshotIsolated(t *testing.T) {
	s := NewMemoryStore()
	user := &model.User{ID: "u1", Name: "Riya"}
	s.SetCurrentUser(user)

	user.Name = "changed outside"
	assert.Equal(t, "Riya", s.CurrentUser().Name)

	got := s.CurrentUser()
	got.Name = "changed on read"
	assert.Equal(t, "Riya", s.CurrentUser().Name)
}

func TestAddAddress(t *testing.T) {
	s := NewMemoryStore()

	// No dedup and no unique-default enforcement at this layer.
	addr := model.Address{ID: "a1", Flat: "12B", Building: "Sea View", Area: "Andheri", IsDefault: true}
	s.AddAddress(addr)
	s.AddAddress(addr)
	assert.Len(t, s.Addresses(), 2)
}

func TestUpdateSubscription(t *testing.T) {
	s := NewMemoryStore()
	s.AddSubscription(testSubscription("s1", "c1"))

	t.Run("Merges only the given fields", func(t *testing.T) {
		before := s.Subscriptions()[0]

		qty := int64(2000)
		require.NoError(t, s.UpdateSubscription("s1", model.SubscriptionPatch{QuantityPerDeliveryML: &qty}))

		after := s.Subscriptions()[0]
		assert.Equal(t, int64(2000), after.QuantityPerDeliveryML)

		before.QuantityPerDeliveryML = 2000
		assert.Equal(t, before, after)
	})

	t.Run("Miss is reported and changes nothing", func(t *testing.T) {
		snapshot := s.Subscriptions()

		qty := int64(9000)
		err := s.UpdateSubscription("does-not-exist", model.SubscriptionPatch{QuantityPerDeliveryML: &qty})
		assert.ErrorIs(t, err, model.ErrSubscriptionNotFound)
		assert.Equal(t, snapshot, s.Subscriptions())
	})
}

func TestPrimarySubscription(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.PrimarySubscription("c1")
	assert.ErrorIs(t, err, model.ErrNoActiveSubscription)

	first := testSubscription("s1", "c1")
	second := testSubscription("s2", "c1")
	s.AddSubscription(first)
	s.AddSubscription(second)

	// Both stay in the collection; the first-inserted active one is primary.
	assert.Len(t, s.Subscriptions(), 2)
	primary, err := s.PrimarySubscription("c1")
	require.NoError(t, err)
	assert.Equal(t, "s1", primary.ID)

	inactive := false
	require.NoError(t, s.UpdateSubscription("s1", model.SubscriptionPatch{IsActive: &inactive}))
	primary, err = s.PrimarySubscription("c1")
	require.NoError(t, err)
	assert.Equal(t, "s2", primary.ID)
}

func TestUpsertOverride(t *testing.T) {
	s := NewMemoryStore()

	t.Run("Second write for the same pair replaces in place", func(t *testing.T) {
		qty := int64(2000)
		s.UpsertOverride(model.DailyOverride{ID: "o1", SubscriptionID: "s1", Date: "2024-06-01", QuantityOverrideML: &qty})
		s.UpsertOverride(model.DailyOverride{ID: "o2", SubscriptionID: "s2", Date: "2024-06-01", IsPaused: true})

		s.UpsertOverride(model.DailyOverride{ID: "o3", SubscriptionID: "s1", Date: "2024-06-01", IsPaused: true})

		overrides := s.Overrides()
		require.Len(t, overrides, 2)
		// List position is preserved by the replace.
		assert.Equal(t, "o3", overrides[0].ID)
		assert.True(t, overrides[0].IsPaused)
		assert.Nil(t, overrides[0].QuantityOverrideML)
	})

	t.Run("Different dates stay separate", func(t *testing.T) {
		s.UpsertOverride(model.DailyOverride{ID: "o4", SubscriptionID: "s1", Date: "2024-06-02", IsPaused: true})
		assert.Len(t, s.Overrides(), 3)

		override, ok := s.OverrideFor("s1", "2024-06-02")
		require.True(t, ok)
		assert.Equal(t, "o4", override.ID)

		_, ok = s.OverrideFor("s1", "2024-07-01")
		assert.False(t, ok)
	})
}

func TestUpdateDelivery(t *testing.T) {
	s := NewMemoryStore()
	s.AddDelivery(model.Delivery{
		ID: "d1", CustomerID: "c1", Date: "2024-06-01", MilkProductID: "1",
		QuantityDeliveredML: 1000, PricePerLiterPaise: 6000, TotalPaise: 6000,
		Status: model.DeliveryPending,
	})

	status := model.DeliveryDelivered
	now := time.Now().UTC()
	require.NoError(t, s.UpdateDelivery("d1", model.DeliveryPatch{Status: &status, DeliveredAt: &now}))

	got, err := s.FindDelivery("d1")
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryDelivered, got.Status)
	require.NotNil(t, got.DeliveredAt)
	// Untouched fields survive the patch.
	assert.Equal(t, int64(6000), got.TotalPaise)

	err = s.UpdateDelivery("does-not-exist", model.DeliveryPatch{Status: &status})
	assert.ErrorIs(t, err, model.ErrDeliveryNotFound)
}

func TestCustomerRoster(t *testing.T) {
	s := NewMemoryStore()

	t.Run("Removing a customer does not cascade to subscriptions", func(t *testing.T) {
		s.AddSubscription(testSubscription("s1", "c1"))
		require.NoError(t, s.RemoveCustomer("c1"))

		assert.Len(t, s.Customers(), 4)
		assert.Len(t, s.Subscriptions(), 1)
	})

	t.Run("Replace swaps the whole roster", func(t *testing.T) {
		s.ReplaceCustomers([]model.Customer{{ID: "cx", Name: "Kiran Rao"}})
		customers := s.Customers()
		require.Len(t, customers, 1)
		assert.Equal(t, "cx", customers[0].ID)
	})

	t.Run("Update replaces the stored entry", func(t *testing.T) {
		customer, err := s.FindCustomer("cx")
		require.NoError(t, err)
		customer.Phone = "+91 90000 00000"
		require.NoError(t, s.UpdateCustomer(customer))

		got, err := s.FindCustomer("cx")
		require.NoError(t, err)
		assert.Equal(t, "+91 90000 00000", got.Phone)

		assert.ErrorIs(t, s.UpdateCustomer(model.Customer{ID: "nope"}), model.ErrCustomerNotFound)
	})
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	s.AddSubscription(testSubscription("s1", "c1"))

	snapshot := s.Subscriptions()
	snapshot[0].DaysOfWeek[0] = time.Sunday
	snapshot[0].QuantityPerDeliveryML = 9999

	fresh := s.Subscriptions()
	assert.Equal(t, time.Monday, fresh[0].DaysOfWeek[0])
	assert.Equal(t, int64(1000), fresh[0].QuantityPerDeliveryML)

	customers := s.Customers()
	customers[0].Subscription.QuantityPerDeliveryML = 9999
	assert.Equal(t, int64(1000), s.Customers()[0].Subscription.QuantityPerDeliveryML)
}
