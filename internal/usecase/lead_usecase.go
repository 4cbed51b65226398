package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"aurora_motors/internal/domain/entities"
	"aurora_motors/internal/usecase/interfaces"
)

var ErrInvalidLead = errors.New("invalid lead")

// ILeadUseCase captures inquiries from the website forms.
//
// Leads are stored as submitted. There is no deduplication and no follow-up
// workflow.

type ILeadUseCase interface {
	Submit(ctx context.Context, lead entities.Lead) (string, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Submit(ctx context.Context, lead entities.Lead) (string, error) {
	lead.Email = strings.TrimSpace(lead.Email)
	if err := entities.Validate(lead); err != nil {
		log.Printf("[lead][usecase] rejected lead_type=%q err=%v", lead.LeadType, err)
		return "", fmt.Errorf("%w: %v", ErrInvalidLead, err)
	}

	id, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.Printf("[lead][usecase] store failed lead_type=%s err=%v", lead.LeadType, err)
		return "", err
	}
	log.Printf("[lead][usecase] received id=%s lead_type=%s source=%q", id, lead.LeadType, lead.Source)
	return id, nil
}
