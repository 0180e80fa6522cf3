package domain

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Preference tiers. TierNone means the player does not play the role at all.
const (
	TierNone = iota
	TierMain
	TierSecondary
	TierTertiary
)

var (
	ErrRoleConflict = errors.New("role listed in more than one tier")
	ErrNoMainRole   = errors.New("at least one main role is required")
)

// RolePreference is a player's three-tier willingness to play each role.
// Tiers are disjoint; the first role of a tier is its representative for
// point lookups.
type RolePreference struct {
	main      []Role
	secondary []Role
	tertiary  []Role
}

func NewRolePreference(main, secondary, tertiary []Role) (RolePreference, error) {
	if len(main) == 0 {
		return RolePreference{}, ErrNoMainRole
	}
	seen := mapset.NewSet[Role]()
	for _, tier := range [][]Role{main, secondary, tertiary} {
		for _, role := range tier {
			if !role.Valid() {
				return RolePreference{}, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
			}
			if !seen.Add(role) {
				return RolePreference{}, fmt.Errorf("%w: %s", ErrRoleConflict, role)
			}
		}
	}
	return RolePreference{
		main:      append([]Role(nil), main...),
		secondary: append([]Role(nil), secondary...),
		tertiary:  append([]Role(nil), tertiary...),
	}, nil
}

// Tier returns the tier the role belongs to, or TierNone.
func (p RolePreference) Tier(role Role) int {
	for _, r := range p.main {
		if r == role {
			return TierMain
		}
	}
	for _, r := range p.secondary {
		if r == role {
			return TierSecondary
		}
	}
	for _, r := range p.tertiary {
		if r == role {
			return TierTertiary
		}
	}
	return TierNone
}

// Playable reports whether the role is in any tier.
func (p RolePreference) Playable(role Role) bool {
	return p.Tier(role) != TierNone
}

// Roles returns the union of all tiers in fixed lane order.
func (p RolePreference) Roles() []Role {
	all := mapset.NewSet[Role]()
	all.Append(p.main...)
	all.Append(p.secondary...)
	all.Append(p.tertiary...)
	union := make([]Role, 0, all.Cardinality())
	for _, role := range Roles {
		if all.Contains(role) {
			union = append(union, role)
		}
	}
	return union
}

// Representative returns the role whose table entry stands in for the
// whole tier, which is the tier's first listed role.
func (p RolePreference) Representative(tier int) (Role, bool) {
	var roles []Role
	switch tier {
	case TierMain:
		roles = p.main
	case TierSecondary:
		roles = p.secondary
	case TierTertiary:
		roles = p.tertiary
	}
	if len(roles) == 0 {
		return 0, false
	}
	return roles[0], true
}

func (p RolePreference) Main() []Role      { return append([]Role(nil), p.main...) }
func (p RolePreference) Secondary() []Role { return append([]Role(nil), p.secondary...) }
func (p RolePreference) Tertiary() []Role  { return append([]Role(nil), p.tertiary...) }

func (p RolePreference) String() string {
	return "Main: " + joinOrNone(p.main) +
		" | Secondary: " + joinOrNone(p.secondary) +
		" | Tertiary: " + joinOrNone(p.tertiary)
}

func joinOrNone(roles []Role) string {
	if len(roles) == 0 {
		return "None"
	}
	return JoinRoles(roles)
}

// JoinRoles serializes a role list the way the roster file stores it.
func JoinRoles(roles []Role) string {
	names := make([]string, len(roles))
	for i := range roles {
		names[i] = roles[i].String()
	}
	return strings.Join(names, ", ")
}

// SplitRoles parses a delimiter-joined role list produced by JoinRoles.
func SplitRoles(s string) ([]Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	roles := make([]Role, 0, len(parts))
	for _, part := range parts {
		role, err := ParseRole(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
