package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

const (
	campaignsCollection  = "campaigns"
	charactersCollection = "characters"
)

// CampaignRepository persists campaigns. Campaign ids are caller-assigned
// strings (seed data uses stable ids), so no ObjectID mapping is needed.
type CampaignRepository struct {
	coll *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{coll: db.Collection(campaignsCollection)}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, campaign); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil // already seeded
		}
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Campaign
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return &c, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []domain.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return campaigns, nil
}

// CharacterRepository persists characters with their embedded sheet data.
type CharacterRepository struct {
	coll *mongo.Collection
}

func NewCharacterRepository(db *mongo.Database) *CharacterRepository {
	return &CharacterRepository{coll: db.Collection(charactersCollection)}
}

func (r *CharacterRepository) Create(ctx context.Context, character *domain.Character) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, character); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil // already seeded
		}
		return fmt.Errorf("insert character: %w", err)
	}
	return nil
}

func (r *CharacterRepository) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Character, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"campaign_id": campaignID})
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer cursor.Close(ctx)

	var characters []domain.Character
	if err := cursor.All(ctx, &characters); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}
	return characters, nil
}
