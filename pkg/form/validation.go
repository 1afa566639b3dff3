package form

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/navarrastar/resume-verify/pkg/models"
)

// Reasons reported by ValidationError, in the order the rules are checked
const (
	ReasonMissingFields   = "missing fields"
	ReasonInvalidEmail    = "invalid email"
	ReasonInvalidLinkedIn = "invalid linkedin"
	ReasonInvalidPhone    = "invalid phone"
)

// user@domain.tld with no whitespace and a single "@"
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError is returned by Submit when a field fails a local check
type ValidationError struct {
	Reason       string
	Notification models.Notification
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type rule struct {
	reason      string
	title       string
	description string
	check       func(models.Submission) bool
}

// First failing rule wins.
var rules = []rule{
	{
		reason:      ReasonMissingFields,
		title:       "Missing information",
		description: "Please fill in all fields",
		check: func(s models.Submission) bool {
			return validate.Var(s.Email, "required") == nil && validate.Var(s.LinkedIn, "required") == nil
		},
	},
	{
		reason:      ReasonInvalidEmail,
		title:       "Invalid email",
		description: "Please enter a valid email address",
		check: func(s models.Submission) bool {
			return validate.Var(s.Email, "simpleemail") == nil
		},
	},
	{
		reason:      ReasonInvalidLinkedIn,
		title:       "Invalid LinkedIn URL",
		description: "Please enter a valid LinkedIn profile URL",
		check: func(s models.Submission) bool {
			return validate.Var(s.LinkedIn, "contains=linkedin.com") == nil
		},
	},
	{
		reason:      ReasonInvalidPhone,
		title:       "Invalid phone number",
		description: "Please enter a valid phone number",
		check: func(s models.Submission) bool {
			return validate.Var(s.Phone, "required,min=10") == nil
		},
	},
}

// Validate runs the form's local checks and returns the first violation, or nil
func Validate(s models.Submission) *ValidationError {
	for _, r := range rules {
		if !r.check(s) {
			return &ValidationError{
				Reason: r.reason,
				Notification: models.Notification{
					Title:       r.title,
					Description: r.description,
					Variant:     models.VariantDestructive,
				},
			}
		}
	}
	return nil
}
