package form

import (
	"github.com/sirupsen/logrus"

	"github.com/navarrastar/resume-verify/pkg/models"
)

// Notifier displays notifications produced by the controller
type Notifier interface {
	Notify(n models.Notification)
}

// NotifierFunc adapts a plain function to Notifier
type NotifierFunc func(n models.Notification)

func (f NotifierFunc) Notify(n models.Notification) { f(n) }

// LogNotifier writes notifications through logrus. Destructive ones are logged as errors.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (l LogNotifier) Notify(n models.Notification) {
	entry := l.Logger.WithField("title", n.Title)
	if n.Variant == models.VariantDestructive {
		entry.Error(n.Description)
		return
	}
	entry.Info(n.Description)
}
