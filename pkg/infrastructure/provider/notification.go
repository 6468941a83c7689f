package provider

import (
	log "github.com/sirupsen/logrus"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

// LogNotifier writes notifications to the structured log. It stands in for
// a push gateway; delivery failures do not exist here.
type LogNotifier struct{}

var _ model.NotificationSender = LogNotifier{}

func NewLogNotifier() LogNotifier { return LogNotifier{} }

func (LogNotifier) Send(userID, title, body string) error {
	log.WithFields(log.Fields{
		"userId": userID,
		"title":  title,
		"body":   body,
	}).Info("notification")
	return nil
}
