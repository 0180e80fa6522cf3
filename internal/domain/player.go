package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Player is immutable once built. All scoring quantities are derived,
// never stored.
type Player struct {
	ID           uuid.UUID
	Name         string
	Rank         Rank
	Region       Region
	Preference   RolePreference
	ShotCaller   bool
	RegisteredAt time.Time
}

// NewPlayer validates the preference tiers and builds a player.
func NewPlayer(name string, rank Rank, region Region, main, secondary, tertiary []Role, shotCaller bool) (Player, error) {
	pref, err := NewRolePreference(main, secondary, tertiary)
	if err != nil {
		return Player{}, err
	}
	return Player{
		ID:           uuid.New(),
		Name:         name,
		Rank:         rank,
		Region:       region,
		Preference:   pref,
		ShotCaller:   shotCaller,
		RegisteredAt: time.Now(),
	}, nil
}

// BasePoints is the player's point value at their first main role, plus
// the region bonus. Used wherever scoring ignores the assigned role.
func (p Player) BasePoints() float64 {
	rep, ok := p.Preference.Representative(TierMain)
	if !ok {
		return p.Region.Bonus()
	}
	return Points(p.Rank, rep) + p.Region.Bonus()
}

// AssignedPoints is the point value for playing the given role: the table
// entry of the representative role of the tier the assigned role falls in,
// plus the region bonus. A role outside every tier contributes only the
// region bonus; the fit adjustments make such assignments unusable.
func (p Player) AssignedPoints(role Role) float64 {
	rep, ok := p.Preference.Representative(p.Preference.Tier(role))
	if !ok {
		return p.Region.Bonus()
	}
	return Points(p.Rank, rep) + p.Region.Bonus()
}

// StandardAdjustment is the flat per-tier fit bonus or penalty.
func (p Player) StandardAdjustment(role Role) float64 {
	switch p.Preference.Tier(role) {
	case TierMain:
		return 2.5
	case TierSecondary:
		return -1.5
	case TierTertiary:
		return -5.0
	}
	return math.Inf(-1)
}

// AdvancedAdjustment scales the fit bonus or penalty with the player's
// point value at the assigned role.
func (p Player) AdvancedAdjustment(role Role) float64 {
	switch p.Preference.Tier(role) {
	case TierMain:
		return p.AssignedPoints(role) * 0.02
	case TierSecondary:
		return p.AssignedPoints(role) * -0.02
	case TierTertiary:
		return p.AssignedPoints(role) * -0.30
	}
	return math.Inf(-1)
}

// ShotCallerBonus is a flat bonus for in-game shot calling, independent
// of the assigned role.
func (p Player) ShotCallerBonus() float64 {
	if p.ShotCaller {
		return 0.5
	}
	return 0
}

// Flexibility is the number of distinct roles the player can fill.
func (p Player) Flexibility() int {
	return len(p.Preference.Roles())
}
