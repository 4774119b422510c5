package domain

import "time"

// Visibility controls who may see a character attribute or inventory item.
type Visibility string

const (
	VisibilityPrivate         Visibility = "PRIVATE"
	VisibilityCampaignPlayers Visibility = "CAMPAIGN_PLAYERS"
	VisibilityPublic          Visibility = "PUBLIC"
)

// Campaign groups players under a master.
type Campaign struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	MasterID    string    `json:"master_id" bson:"master_id"`
	PlayerIDs   []string  `json:"player_ids" bson:"player_ids"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Attribute is a named stat on a character sheet.
type Attribute struct {
	Name       string     `json:"name" bson:"name"`
	Value      string     `json:"value" bson:"value"`
	Visibility Visibility `json:"visibility" bson:"visibility"`
}

// InventoryItem is a carried item on a character sheet.
type InventoryItem struct {
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Quantity    int        `json:"quantity" bson:"quantity"`
	Visibility  Visibility `json:"visibility" bson:"visibility"`
}

// Character is a player character within a campaign.
type Character struct {
	ID         string          `json:"id" bson:"_id,omitempty"`
	Name       string          `json:"name" bson:"name"`
	Slug       string          `json:"slug" bson:"slug"`
	Picture    string          `json:"picture,omitempty" bson:"picture,omitempty"`
	AuthorID   string          `json:"author_id" bson:"author_id"`
	CampaignID string          `json:"campaign_id" bson:"campaign_id"`
	Attributes []Attribute     `json:"attributes" bson:"attributes"`
	Inventory  []InventoryItem `json:"inventory" bson:"inventory"`
	CreatedAt  time.Time       `json:"created_at" bson:"created_at"`
}

// VisibleTo reports whether a sheet entry with the given visibility may be
// shown to the viewer. PRIVATE entries are reserved for the character's
// author and admins; CAMPAIGN_PLAYERS and PUBLIC entries are visible to any
// authenticated viewer of the campaign.
func (ch *Character) VisibleTo(v Visibility, viewer Identity) bool {
	if v == VisibilityPrivate {
		return viewer.IsAdmin() || viewer.UserID == ch.AuthorID
	}
	return true
}
