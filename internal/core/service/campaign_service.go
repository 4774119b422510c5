package service

import (
	"context"
	"fmt"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

// CampaignService exposes campaign data to authenticated callers.
type CampaignService struct {
	campaigns  ports.CampaignRepository
	characters ports.CharacterRepository
}

func NewCampaignService(campaigns ports.CampaignRepository, characters ports.CharacterRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns, characters: characters}
}

// ListCampaigns returns all campaigns visible behind the login wall.
func (s *CampaignService) ListCampaigns(ctx context.Context, _ domain.Identity) ([]domain.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// ListCharacters returns the characters of a campaign with sheet entries
// filtered by visibility: PRIVATE entries are only included for the
// character's author or an admin viewer.
func (s *CampaignService) ListCharacters(ctx context.Context, viewer domain.Identity, campaignID string) ([]domain.Character, error) {
	if _, err := s.campaigns.FindByID(ctx, campaignID); err != nil {
		return nil, err
	}

	characters, err := s.characters.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}

	filtered := make([]domain.Character, 0, len(characters))
	for _, ch := range characters {
		filtered = append(filtered, filterSheet(ch, viewer))
	}
	return filtered, nil
}

func filterSheet(ch domain.Character, viewer domain.Identity) domain.Character {
	attrs := make([]domain.Attribute, 0, len(ch.Attributes))
	for _, a := range ch.Attributes {
		if ch.VisibleTo(a.Visibility, viewer) {
			attrs = append(attrs, a)
		}
	}

	items := make([]domain.InventoryItem, 0, len(ch.Inventory))
	for _, it := range ch.Inventory {
		if ch.VisibleTo(it.Visibility, viewer) {
			items = append(items, it)
		}
	}

	ch.Attributes = attrs
	ch.Inventory = items
	return ch
}
