package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
	"github.com/seeyaaaaa/daily-dairy/pkg/domain/service"
)

// LoggingDispatcher logs every domain event and forwards the user-facing
// ones to the notification sender.
type LoggingDispatcher struct {
	notifier model.NotificationSender
}

var _ service.EventDispatcher = (*LoggingDispatcher)(nil)

func NewLoggingDispatcher(notifier model.NotificationSender) *LoggingDispatcher {
	if notifier == nil {
		panic("app: notification sender must not be nil")
	}
	return &LoggingDispatcher{notifier: notifier}
}

func (d *LoggingDispatcher) Dispatch(event service.Event) error {
	log.WithFields(log.Fields{"event": event.Type(), "payload": fmt.Sprintf("%+v", event)}).Info("domain event")

	switch e := event.(type) {
	case model.SessionStarted:
		return d.notifier.Send(e.UserID, "Welcome to Daily Dairy!", "Your milk, delivered fresh every morning.")
	case model.DeliveryStatusChanged:
		switch e.Status {
		case model.DeliveryOutForDelivery:
			return d.notifier.Send(e.CustomerID, "Milk on the way", "Your delivery is out for delivery.")
		case model.DeliveryDelivered:
			return d.notifier.Send(e.CustomerID, "Delivered", "Today's milk has been delivered.")
		case model.DeliveryMissed:
			return d.notifier.Send(e.CustomerID, "Delivery missed", "We could not deliver today. It will be adjusted in your bill.")
		}
	case model.OverrideApplied:
		if e.Paused {
			return d.notifier.Send(e.SubscriptionID, "Delivery paused", fmt.Sprintf("No delivery on %s.", e.Date))
		}
	}
	return nil
}
