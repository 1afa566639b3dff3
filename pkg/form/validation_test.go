package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navarrastar/resume-verify/pkg/models"
)

func TestValidate(t *testing.T) {
	valid := models.Submission{
		Email:    "a@b.com",
		LinkedIn: "https://linkedin.com/in/x",
		Phone:    "1234567890",
	}

	tests := []struct {
		name   string
		mutate func(*models.Submission)
		reason string
		title  string
	}{
		{"missing email", func(s *models.Submission) { s.Email = "" }, ReasonMissingFields, "Missing information"},
		{"missing linkedin", func(s *models.Submission) { s.LinkedIn = "" }, ReasonMissingFields, "Missing information"},
		{"missing everything", func(s *models.Submission) { *s = models.Submission{} }, ReasonMissingFields, "Missing information"},
		{"email without at", func(s *models.Submission) { s.Email = "ab.com" }, ReasonInvalidEmail, "Invalid email"},
		{"email without tld", func(s *models.Submission) { s.Email = "a@b" }, ReasonInvalidEmail, "Invalid email"},
		{"email with space", func(s *models.Submission) { s.Email = "a b@c.com" }, ReasonInvalidEmail, "Invalid email"},
		{"email with two ats", func(s *models.Submission) { s.Email = "a@b@c.com" }, ReasonInvalidEmail, "Invalid email"},
		{"linkedin wrong host", func(s *models.Submission) { s.LinkedIn = "https://example.com/in/x" }, ReasonInvalidLinkedIn, "Invalid LinkedIn URL"},
		{"phone empty", func(s *models.Submission) { s.Phone = "" }, ReasonInvalidPhone, "Invalid phone number"},
		{"phone short", func(s *models.Submission) { s.Phone = "123456789" }, ReasonInvalidPhone, "Invalid phone number"},
		{"bad email wins over bad phone", func(s *models.Submission) { s.Email = "nope"; s.Phone = "1" }, ReasonInvalidEmail, "Invalid email"},
		{"missing linkedin wins over bad email", func(s *models.Submission) { s.LinkedIn = ""; s.Email = "nope" }, ReasonMissingFields, "Missing information"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			verr := Validate(s)
			require.NotNil(t, verr)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.reason, verr.Error())
			assert.Equal(t, tt.title, verr.Notification.Title)
			assert.Equal(t, models.VariantDestructive, verr.Notification.Variant)
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	cases := []models.Submission{
		{Email: "a@b.com", LinkedIn: "https://linkedin.com/in/x", Phone: "1234567890"},
		{Email: "first.last@mail.example.org", LinkedIn: "www.linkedin.com/in/someone", Phone: "(123) 456-7890"},
		{Email: "x@y.z", LinkedIn: "linkedin.com", Phone: "+1 555 123 4567"},
	}
	for _, s := range cases {
		assert.Nil(t, Validate(s), "expected %+v to pass", s)
	}
}
