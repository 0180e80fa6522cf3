package balance

import (
	"errors"
	"math"

	"teambalancer/internal/domain"
)

// Mode selects the scoring strategy. The two modes share one code path
// and differ only in how points and fit adjustments are looked up; a
// single search never mixes modes.
type Mode int

const (
	// Standard scores every player at their main role regardless of the
	// assigned one and applies flat per-tier fit adjustments.
	Standard Mode = iota
	// Advanced scores players at the role they are actually assigned and
	// scales fit adjustments with those points.
	Advanced
)

var ErrUnknownMode = errors.New("unknown scoring mode")

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Advanced:
		return "advanced"
	}
	return "mode(?)"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "standard":
		return Standard, nil
	case "advanced":
		return Advanced, nil
	}
	return 0, ErrUnknownMode
}

func (m Mode) points(p domain.Player, role domain.Role) float64 {
	if m == Advanced {
		return p.AssignedPoints(role)
	}
	return p.BasePoints()
}

func (m Mode) adjustment(p domain.Player, role domain.Role) float64 {
	if m == Advanced {
		return p.AdvancedAdjustment(role)
	}
	return p.StandardAdjustment(role)
}

// Synergy term parameters: team quality rewards higher average points
// with diminishing returns.
const (
	synergyExponent = 0.5
	synergyWeight   = 1
)

// TeamScore is the aggregate score of one side: per-player points, fit
// adjustment and shot-caller bonus, plus one team-level synergy term.
func (m Mode) TeamScore(a Assignment) float64 {
	var total, pointSum float64
	for slot, role := range domain.Roles {
		p := a[slot]
		points := m.points(p, role)
		total += points + m.adjustment(p, role) + p.ShotCallerBonus()
		pointSum += points
	}
	avg := pointSum / domain.NumRoles
	return total + math.Pow(avg, synergyExponent)*synergyWeight
}

// TValue is the absolute aggregate score gap between two sides.
func TValue(scoreA, scoreB float64) float64 {
	return math.Abs(scoreA - scoreB)
}

// LValue is the root mean square of the per-lane score differences
// between two sides. Shot-caller bonuses and the synergy term are left
// out: they do not belong to any single lane.
func (m Mode) LValue(a, b Assignment) float64 {
	var sum float64
	for slot, role := range domain.Roles {
		pa, pb := a[slot], b[slot]
		diff := (m.points(pa, role) + m.adjustment(pa, role)) -
			(m.points(pb, role) + m.adjustment(pb, role))
		sum += diff * diff
	}
	return math.Sqrt(sum / domain.NumRoles)
}
