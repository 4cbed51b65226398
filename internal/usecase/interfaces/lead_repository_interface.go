package interfaces

import (
	"aurora_motors/internal/domain/entities"
	"context"
)

// ILeadRepository stores submitted leads. Leads are never read back.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (string, error)
}
