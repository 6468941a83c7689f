package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/service"
	"github.com/seeyaaaaa/daily-dairy/pkg/infrastructure/store"
)

var weekdaysOnly = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

func setupSubscriptions(t *testing.T) (service.SubscriptionService, *store.MemoryStore, *mockEventDispatcher) {
	t.Helper()
	memStore := store.NewMemoryStore()
	dispatcher := &mockEventDispatcher{}
	subs := service.NewSubscriptionService(memStore, memStore, memStore, dispatcher)
	return subs, memStore, dispatcher
}

func subscribeInput(customerID string) service.SubscribeInput {
	return service.SubscribeInput{
		CustomerID:    customerID,
		AddressID:     "a1",
		MilkProductID: "1",
		QuantityML:    1000,
		DaysOfWeek:    weekdaysOnly,
		StartDate:     "2024-06-01",
		PaymentMethod: model.PayUPI,
	}
}

func TestSubscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		subs, memStore, dispatcher := setupSubscriptions(t)

		sub, err := subs.Subscribe(subscribeInput("c1"))
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.True(t, sub.IsActive)
		assert.Equal(t, int64(1000), sub.QuantityPerDeliveryML)

		stored, err := memStore.PrimarySubscription("c1")
		require.NoError(t, err)
		assert.Equal(t, sub.ID, stored.ID)

		require.Len(t, dispatcher.events, 1)
		created, ok := dispatcher.events[0].(model.SubscriptionCreated)
		require.True(t, ok)
		assert.Equal(t, sub.ID, created.SubscriptionID)
	})

	t.Run("Fail on non-positive quantity", func(t *testing.T) {
		subs, _, _ := setupSubscriptions(t)
		input := subscribeInput("c1")
		input.QuantityML = 0
		_, err := subs.Subscribe(input)
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})

	t.Run("Fail on empty delivery days", func(t *testing.T) {
		subs, _, _ := setupSubscriptions(t)
		input := subscribeInput("c1")
		input.DaysOfWeek = nil
		_, err := subs.Subscribe(input)
		assert.ErrorIs(t, err, service.ErrNoDeliveryDays)
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		subs, _, _ := setupSubscriptions(t)
		input := subscribeInput("c1")
		input.MilkProductID = "no-such-milk"
		_, err := subs.Subscribe(input)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Newest plan replaces the active one, history stays", func(t *testing.T) {
		subs, memStore, _ := setupSubscriptions(t)

		first, err := subs.Subscribe(subscribeInput("c1"))
		require.NoError(t, err)

		second, err := subs.Subscribe(subscribeInput("c1"))
		require.NoError(t, err)

		all := memStore.Subscriptions()
		require.Len(t, all, 2)
		assert.Equal(t, first.ID, all[0].ID)
		assert.False(t, all[0].IsActive)
		assert.True(t, all[1].IsActive)

		primary, err := memStore.PrimarySubscription("c1")
		require.NoError(t, err)
		assert.Equal(t, second.ID, primary.ID)
	})
}

func TestChangePlan(t *testing.T) {
	subs, memStore, dispatcher := setupSubscriptions(t)
	created, err := subs.Subscribe(subscribeInput("c1"))
	require.NoError(t, err)

	t.Run("Partial update preserves other fields", func(t *testing.T) {
		before, err := memStore.PrimarySubscription("c1")
		require.NoError(t, err)

		newQty := int64(2000)
		require.NoError(t, subs.ChangePlan(created.ID, model.SubscriptionPatch{QuantityPerDeliveryML: &newQty}))

		after, err := memStore.PrimarySubscription("c1")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), after.QuantityPerDeliveryML)

		before.QuantityPerDeliveryML = 2000
		assert.Equal(t, before, after)
	})

	t.Run("Miss leaves the collection untouched", func(t *testing.T) {
		snapshot := memStore.Subscriptions()

		newQty := int64(3000)
		err := subs.ChangePlan("does-not-exist", model.SubscriptionPatch{QuantityPerDeliveryML: &newQty})
		assert.ErrorIs(t, err, model.ErrSubscriptionNotFound)
		assert.Equal(t, snapshot, memStore.Subscriptions())
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		productID := "no-such-milk"
		err := subs.ChangePlan(created.ID, model.SubscriptionPatch{MilkProductID: &productID})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Dispatches change event", func(t *testing.T) {
		dispatcher.Reset()
		active := false
		require.NoError(t, subs.ChangePlan(created.ID, model.SubscriptionPatch{IsActive: &active}))
		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.SubscriptionChanged)
		assert.True(t, ok)
	})
}

func TestDailyOverrides(t *testing.T) {
	subs, memStore, _ := setupSubscriptions(t)
	created, err := subs.Subscribe(subscribeInput("c1"))
	require.NoError(t, err)
	date := model.Date("2024-06-01")

	t.Run("Fail on unknown subscription", func(t *testing.T) {
		assert.ErrorIs(t, subs.PauseDay("does-not-exist", date), model.ErrSubscriptionNotFound)
	})

	t.Run("Fail on malformed date", func(t *testing.T) {
		assert.ErrorIs(t, subs.PauseDay(created.ID, "June 1st"), model.ErrBadDate)
	})

	t.Run("Second write for the same day wins, one record remains", func(t *testing.T) {
		require.NoError(t, subs.OverrideDayQuantity(created.ID, date, 2000))
		require.NoError(t, subs.PauseDay(created.ID, date))

		overrides := memStore.Overrides()
		require.Len(t, overrides, 1)
		assert.True(t, overrides[0].IsPaused)
		require.NotNil(t, overrides[0].QuantityOverrideML)
		assert.Equal(t, int64(0), *overrides[0].QuantityOverrideML)
	})

	t.Run("Quantity clamped to the allowed range", func(t *testing.T) {
		require.NoError(t, subs.OverrideDayQuantity(created.ID, "2024-06-02", 9000))
		override, ok := memStore.OverrideFor(created.ID, "2024-06-02")
		require.True(t, ok)
		assert.Equal(t, int64(service.MaxOverrideML), *override.QuantityOverrideML)

		require.NoError(t, subs.OverrideDayQuantity(created.ID, "2024-06-03", 100))
		override, ok = memStore.OverrideFor(created.ID, "2024-06-03")
		require.True(t, ok)
		assert.Equal(t, int64(service.MinOverrideML), *override.QuantityOverrideML)
	})

	t.Run("Overriding clears a pause", func(t *testing.T) {
		require.NoError(t, subs.OverrideDayQuantity(created.ID, date, 1500))
		override, ok := memStore.OverrideFor(created.ID, date)
		require.True(t, ok)
		assert.False(t, override.IsPaused)
		assert.Equal(t, int64(1500), *override.QuantityOverrideML)
	})
}
