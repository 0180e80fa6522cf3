package balance

import "teambalancer/internal/domain"

// Assignment maps each role slot to exactly one player, in fixed lane
// order. Slot i holds the player on domain.Roles[i].
type Assignment [domain.NumRoles]domain.Player

// Player returns the player assigned to the role.
func (a Assignment) Player(role domain.Role) domain.Player {
	return a[role]
}

// EnumerateAssignments returns every bijection between the five players
// and the five roles in which each player lands on a role they play.
// Results come out in permutation order of the input slice, so the order
// is deterministic for a given input. The result is empty when no valid
// assignment exists; callers treat that as an infeasible team, not an
// error. Duplicate players produce duplicate assignments.
func EnumerateAssignments(team []domain.Player) []Assignment {
	if len(team) != domain.NumRoles {
		return nil
	}
	var (
		out     []Assignment
		current Assignment
		used    [domain.NumRoles]bool
	)
	var fill func(slot int)
	fill = func(slot int) {
		if slot == domain.NumRoles {
			out = append(out, current)
			return
		}
		role := domain.Roles[slot]
		for i, p := range team {
			if used[i] || !p.Preference.Playable(role) {
				continue
			}
			used[i] = true
			current[slot] = p
			fill(slot + 1)
			used[i] = false
		}
	}
	fill(0)
	return out
}
