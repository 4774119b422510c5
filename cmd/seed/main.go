// Seed command: populates the database with an admin account, a normal
// account, extra users for exercising pagination, and a starter campaign
// with one character. Safe to run repeatedly: existing records are left
// untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
	"github.com/lorehub/lore-hub-api/internal/infrastructure/config"
	mongodb "github.com/lorehub/lore-hub-api/internal/infrastructure/db/mongo"
	"github.com/lorehub/lore-hub-api/pkg/logger"
)

const seedBcryptCost = 8

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	users := mongodb.NewUserRepository(db)
	campaigns := mongodb.NewCampaignRepository(db)
	characters := mongodb.NewCharacterRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	admin, err := ensureUser(ctx, users, "Administrator", "admin@lorehub.local", "admin123456", domain.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
	log.Info().Str("user_id", admin.ID).Msg("admin user ready")

	player, err := ensureUser(ctx, users, "Test User", "user@lorehub.local", "user123456", domain.RoleUser)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed normal user")
	}
	log.Info().Str("user_id", player.ID).Msg("normal user ready")

	// Extra users so paginated listings have more than one page.
	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("user%d@lorehub.local", i)
		name := fmt.Sprintf("User %d", i)
		password := fmt.Sprintf("password%d", i)
		if _, err := ensureUser(ctx, users, name, email, password, domain.RoleUser); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("failed to seed user")
		}
	}
	log.Info().Msg("pagination test users ready")

	if err := campaigns.Create(ctx, &domain.Campaign{
		ID:          "campaign-1",
		Title:       "Starter Adventure",
		Description: "A campaign for beginners",
		MasterID:    admin.ID,
		PlayerIDs:   []string{admin.ID, player.ID},
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed campaign")
	}
	log.Info().Str("campaign_id", "campaign-1").Msg("campaign ready")

	if err := characters.Create(ctx, &domain.Character{
		ID:         "character-1",
		Name:       "Aragorn",
		Slug:       "aragorn",
		Picture:    "https://example.com/aragorn.jpg",
		AuthorID:   player.ID,
		CampaignID: "campaign-1",
		Attributes: []domain.Attribute{
			{Name: "Strength", Value: "15", Visibility: domain.VisibilityCampaignPlayers},
			{Name: "Dexterity", Value: "14", Visibility: domain.VisibilityCampaignPlayers},
			{Name: "Constitution", Value: "13", Visibility: domain.VisibilityCampaignPlayers},
		},
		Inventory: []domain.InventoryItem{
			{Name: "Longsword", Description: "An ancestral blade", Quantity: 1, Visibility: domain.VisibilityCampaignPlayers},
			{Name: "Healing Potion", Description: "Restores 2d4+2 hit points", Quantity: 3, Visibility: domain.VisibilityCampaignPlayers},
		},
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to seed character")
	}
	log.Info().Str("character_id", "character-1").Msg("character ready")

	log.Info().Msg("seed completed")
}

// ensureUser creates the user unless one with the same email already
// exists, in which case the existing record is returned unchanged.
func ensureUser(ctx context.Context, repo ports.UserRepository, name, email, password string, role domain.Role) (*domain.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), seedBcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
