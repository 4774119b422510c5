package ports

import (
	"context"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// CampaignService exposes read access to campaign data for any
// authenticated caller. Character sheets are filtered by entry visibility
// before being returned.
type CampaignService interface {
	ListCampaigns(ctx context.Context, viewer domain.Identity) ([]domain.Campaign, error)
	ListCharacters(ctx context.Context, viewer domain.Identity, campaignID string) ([]domain.Character, error)
}
