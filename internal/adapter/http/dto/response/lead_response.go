package response

import "aurora_motors/internal/domain/entities"

type LeadCreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func FromLeadID(id string) LeadCreatedResponse {
	return LeadCreatedResponse{ID: id, Status: entities.LeadStatusReceived}
}
