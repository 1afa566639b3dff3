package models

// Submission is the payload sent from the verification form
type Submission struct {
	Email    string `json:"email" validate:"required"`
	LinkedIn string `json:"linkedin" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// VerificationResult covers every body the /start endpoint can return.
// The scheduling backend sets ScheduledTime (ISO-8601); the bundled stub sets Message and Data instead.
type VerificationResult struct {
	Success       bool        `json:"success"`
	ScheduledTime string      `json:"scheduledTime,omitempty"`
	Message       string      `json:"message,omitempty"`
	Error         string      `json:"error,omitempty"`
	Details       string      `json:"details,omitempty"`
	Data          *Submission `json:"data,omitempty"`
}

// Notification variants
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a transient message shown to the person filling in the form
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}
