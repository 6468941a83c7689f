package service

import (
	"errors"
	"time"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/billing"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

var ErrDeliveryFinalized = errors.New("delivery is already delivered or missed")

type DeliveryService interface {
	// PlanDay generates the owner's delivery sheet for a date: one pending
	// delivery per roster customer whose active plan runs that weekday,
	// with quantities resolved through that day's overrides. Paused days
	// produce no row.
	PlanDay(date model.Date) ([]model.Delivery, error)
	MarkOutForDelivery(id string) error
	// MarkDelivered finalizes a delivery: stamps the time and prices the
	// delivered quantity at the recorded rate.
	MarkDelivered(id string) error
	MarkMissed(id string) error
}

func NewDeliveryService(deliveries model.DeliveryRepository, customers model.CustomerRepository, overrides model.OverrideRepository, catalog model.CatalogRepository, dispatcher EventDispatcher) DeliveryService {
	return &deliveryService{
		deliveries: deliveries,
		customers:  customers,
		overrides:  overrides,
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

type deliveryService struct {
	deliveries model.DeliveryRepository
	customers  model.CustomerRepository
	overrides  model.OverrideRepository
	catalog    model.CatalogRepository
	dispatcher EventDispatcher
}

func (s *deliveryService) PlanDay(date model.Date) ([]model.Delivery, error) {
	weekday, err := date.Weekday()
	if err != nil {
		return nil, err
	}

	overrides := s.overrides.Overrides()

	var sheet []model.Delivery
	for _, customer := range s.customers.Customers() {
		sub := customer.Subscription
		if sub == nil || !sub.IsActive || !sub.DeliversOn(weekday) {
			continue
		}

		quantity := billing.EffectiveQuantityML(*sub, date, overrides)
		if quantity == 0 {
			continue
		}

		product, err := s.catalog.FindProduct(sub.MilkProductID)
		if err != nil {
			return nil, err
		}

		id, err := s.deliveries.NextID()
		if err != nil {
			return nil, err
		}

		delivery := model.Delivery{
			ID:                  id,
			CustomerID:          customer.ID,
			Date:                date,
			MilkProductID:       product.ID,
			QuantityDeliveredML: quantity,
			PricePerLiterPaise:  product.PricePerLiterPaise,
			TotalPaise:          billing.CostPaise(quantity, product.PricePerLiterPaise),
			Status:              model.DeliveryPending,
		}
		s.deliveries.AddDelivery(delivery)
		sheet = append(sheet, delivery)
	}
	return sheet, nil
}

func (s *deliveryService) MarkOutForDelivery(id string) error {
	return s.transition(id, model.DeliveryOutForDelivery)
}

func (s *deliveryService) MarkDelivered(id string) error {
	return s.transition(id, model.DeliveryDelivered)
}

func (s *deliveryService) MarkMissed(id string) error {
	return s.transition(id, model.DeliveryMissed)
}

func (s *deliveryService) transition(id string, status model.DeliveryStatus) error {
	delivery, err := s.deliveries.FindDelivery(id)
	if err != nil {
		return err
	}
	if delivery.Status == model.DeliveryDelivered || delivery.Status == model.DeliveryMissed {
		return ErrDeliveryFinalized
	}

	patch := model.DeliveryPatch{Status: &status}
	if status == model.DeliveryDelivered {
		now := time.Now().UTC()
		total := billing.CostPaise(delivery.QuantityDeliveredML, delivery.PricePerLiterPaise)
		patch.DeliveredAt = &now
		patch.TotalPaise = &total
	}

	if err := s.deliveries.UpdateDelivery(id, patch); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.DeliveryStatusChanged{
		DeliveryID: id,
		CustomerID: delivery.CustomerID,
		Status:     status,
	})
	return nil
}
