package domain

import "testing"

func TestCharacterVisibleTo(t *testing.T) {
	ch := &Character{ID: "c1", AuthorID: "author"}

	author := Identity{UserID: "author", Role: RoleUser}
	other := Identity{UserID: "someone", Role: RoleUser}
	admin := Identity{UserID: "root", Role: RoleAdmin}

	if !ch.VisibleTo(VisibilityPrivate, author) {
		t.Fatal("author must see private entries")
	}
	if !ch.VisibleTo(VisibilityPrivate, admin) {
		t.Fatal("admin must see private entries")
	}
	if ch.VisibleTo(VisibilityPrivate, other) {
		t.Fatal("other players must not see private entries")
	}
	if !ch.VisibleTo(VisibilityCampaignPlayers, other) {
		t.Fatal("campaign players must see campaign entries")
	}
	if !ch.VisibleTo(VisibilityPublic, other) {
		t.Fatal("everyone must see public entries")
	}
}
