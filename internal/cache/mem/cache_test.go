package mem

import (
	"testing"
	"time"

	"teambalancer/internal/domain"

	"github.com/google/uuid"
)

func TestCache_GetPlayerByName(t *testing.T) {
	c := New()
	if _, ok := c.GetPlayerByName("faker"); ok {
		t.Fatal("empty cache reported a hit")
	}
	if c.Valid() {
		t.Fatal("empty cache reported valid")
	}

	c.Update([]domain.Player{{ID: uuid.New(), Name: "T1 Faker"}})
	if !c.Valid() {
		t.Fatal("cache invalid after Update")
	}
	got, ok := c.GetPlayerByName("  t1  faker ")
	if !ok {
		t.Fatal("normalized lookup missed")
	}
	if got.Name != "T1 Faker" {
		t.Errorf("got %q, want %q", got.Name, "T1 Faker")
	}

	c.Invalidate()
	if c.Valid() {
		t.Fatal("cache valid after Invalidate")
	}
	if _, ok := c.GetPlayerByName("t1 faker"); ok {
		t.Fatal("invalidated cache reported a hit")
	}
}

func TestCache_ListOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	players := []domain.Player{
		{
			ID:           uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Name:         "second",
			RegisteredAt: base,
		},
		{
			ID:           uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Name:         "first",
			RegisteredAt: base,
		},
		{
			ID:           uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Name:         "third",
			RegisteredAt: base.Add(time.Minute),
		},
	}
	c := New()
	c.Update(players)

	got := c.List()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %d players, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, want[i])
		}
	}
}
