package ports

import (
	"context"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// CampaignRepository defines the persistence boundary for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	FindByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
}

// CharacterRepository defines the persistence boundary for characters.
type CharacterRepository interface {
	Create(ctx context.Context, character *domain.Character) error
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Character, error)
}
