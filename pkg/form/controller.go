// Package form implements the verification form: field state, local validation,
// a single submission to the intake endpoint and the notification for its outcome.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/navarrastar/resume-verify/pkg/clients/intake"
	"github.com/navarrastar/resume-verify/pkg/models"
)

// Field names accepted by UpdateField
const (
	FieldEmail    = "email"
	FieldLinkedIn = "linkedin"
	FieldPhone    = "phone"
)

const scheduledLayout = "Monday, January 2 at 3:04 PM"

// ISO-8601 date-times without a zone offset
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

var (
	ErrSubmissionInFlight   = errors.New("submission already in progress")
	ErrVerificationRejected = errors.New("verification request rejected")
	ErrConnection           = errors.New("could not connect to the server")
)

// UIState is the form's field values plus its loading flag
type UIState struct {
	Email     string
	LinkedIn  string
	Phone     string
	IsLoading bool
}

// Controller owns the form state. It is safe for concurrent use; a second Submit
// while one is in flight fails with ErrSubmissionInFlight.
type Controller struct {
	client   intake.Client
	notifier Notifier
	location *time.Location

	mu    sync.Mutex
	state UIState
}

// Option customises a Controller
type Option func(*Controller)

// WithLocation sets the time zone used to display the scheduled call time
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		if loc != nil {
			c.location = loc
		}
	}
}

// NewController creates a form controller with empty fields
func NewController(client intake.Client, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		notifier: notifier,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current form state
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UpdateField sets one field's value. Unknown field names are ignored.
func (c *Controller) UpdateField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case FieldEmail:
		c.state.Email = value
	case FieldLinkedIn:
		c.state.LinkedIn = value
	case FieldPhone:
		c.state.Phone = value
	}
}

// Submit validates the current fields and, if they pass, sends them to the intake
// endpoint. Exactly one notification is emitted for every call that is not rejected
// with ErrSubmissionInFlight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.IsLoading {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	submission := models.Submission{
		Email:    c.state.Email,
		LinkedIn: c.state.LinkedIn,
		Phone:    c.state.Phone,
	}
	if verr := Validate(submission); verr != nil {
		c.mu.Unlock()
		c.notifier.Notify(verr.Notification)
		return verr
	}

	c.state.IsLoading = true
	c.mu.Unlock()

	res := c.client.StartVerification(ctx, submission)

	c.mu.Lock()
	var (
		note models.Notification
		err  error
	)
	switch res.Kind {
	case intake.ResultScheduled:
		note = c.scheduledNotification(res.Body.ScheduledTime)
		c.state.Email, c.state.LinkedIn, c.state.Phone = "", "", ""
	case intake.ResultRejected:
		description := res.Body.Error
		if description == "" {
			description = "There was an error scheduling your verification call"
		}
		note = models.Notification{
			Title:       "Something went wrong",
			Description: description,
			Variant:     models.VariantDestructive,
		}
		err = fmt.Errorf("%w: %s", ErrVerificationRejected, description)
	default:
		note = models.Notification{
			Title:       "Connection error",
			Description: "Could not connect to the server",
			Variant:     models.VariantDestructive,
		}
		err = fmt.Errorf("%w: %v", ErrConnection, res.Err)
	}
	c.state.IsLoading = false
	c.mu.Unlock()

	c.notifier.Notify(note)
	return err
}

func (c *Controller) scheduledNotification(scheduledTime string) models.Notification {
	description := "Our AI agent will call you shortly to verify your credentials."
	if when, ok := parseScheduledTime(scheduledTime, c.location); ok {
		description = fmt.Sprintf("Our AI agent will call you on %s to verify your credentials.", FormatScheduledTime(when, c.location))
	}
	return models.Notification{
		Title:       "Verification Scheduled!",
		Description: description,
		Variant:     models.VariantDefault,
	}
}

// parseScheduledTime accepts ISO-8601 with an offset, or without one in which
// case the time is read in loc.
func parseScheduledTime(value string, loc *time.Location) (time.Time, bool) {
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, true
	}
	for _, layout := range localLayouts {
		if when, err := time.ParseInLocation(layout, value, loc); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}

// FormatScheduledTime renders t as e.g. "Monday, June 10 at 3:00 PM" in loc
func FormatScheduledTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(scheduledLayout)
}
