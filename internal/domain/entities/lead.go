package entities

const CollectionLeads = "lead"

// LeadType classifies an inquiry.
type LeadType string

const (
	LeadTypeContact   LeadType = "contact"
	LeadTypeTestDrive LeadType = "test-drive"
	LeadTypeQuote     LeadType = "quote"
)

// LeadStatusReceived is the acknowledgment returned once a lead is stored.
const LeadStatusReceived = "received"

// Lead is a customer inquiry captured for sales follow-up. It is write-only.
type Lead struct {
	LeadType      LeadType       `json:"lead_type" validate:"required,oneof=contact test-drive quote"`
	Name          string         `json:"name" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone,omitempty"`
	City          string         `json:"city,omitempty"`
	Message       string         `json:"message,omitempty"`
	ModelSlug     string         `json:"model_slug,omitempty"`
	Configuration map[string]any `json:"configuration"`
	Source        string         `json:"source,omitempty"`
}
