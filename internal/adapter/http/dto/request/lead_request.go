package request

import (
	"strings"

	"aurora_motors/internal/domain/entities"
)

// LeadRequest is the payload posted by the contact, test-drive and quote forms.
type LeadRequest struct {
	LeadType      string         `json:"lead_type" binding:"required,oneof=contact test-drive quote"`
	Name          string         `json:"name" binding:"required"`
	Email         string         `json:"email" binding:"required,email"`
	Phone         string         `json:"phone"`
	City          string         `json:"city"`
	Message       string         `json:"message"`
	ModelSlug     string         `json:"model_slug"`
	Configuration map[string]any `json:"configuration"`
	Source        string         `json:"source"`
}

func (r LeadRequest) ToLead() entities.Lead {
	return entities.Lead{
		LeadType:      entities.LeadType(strings.TrimSpace(r.LeadType)),
		Name:          r.Name,
		Email:         strings.TrimSpace(r.Email),
		Phone:         r.Phone,
		City:          r.City,
		Message:       r.Message,
		ModelSlug:     r.ModelSlug,
		Configuration: r.Configuration,
		Source:        r.Source,
	}
}
