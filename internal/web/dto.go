package web

import (
	"errors"
	"fmt"

	"teambalancer/internal/domain"
)

var (
	ErrMissingName = errors.New("player name is required")
)

// createPlayer carries the new-player form. Tier fields hold role names
// as submitted by the checkboxes.
type createPlayer struct {
	Name       string
	Rank       string
	Region     string
	ShotCaller bool
	Main       []string
	Secondary  []string
	Tertiary   []string
}

func (c createPlayer) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if _, err := domain.ParseRank(c.Rank); err != nil {
		return err
	}
	if _, err := domain.ParseRegion(c.Region); err != nil {
		return err
	}
	if len(c.Main) == 0 {
		return domain.ErrNoMainRole
	}
	seen := make(map[string]bool)
	for _, tier := range [][]string{c.Main, c.Secondary, c.Tertiary} {
		for _, name := range tier {
			if _, err := domain.ParseRole(name); err != nil {
				return err
			}
			if seen[name] {
				return fmt.Errorf("%w: %s", domain.ErrRoleConflict, name)
			}
			seen[name] = true
		}
	}
	return nil
}

func parseRoleNames(names []string) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(names))
	for _, name := range names {
		role, err := domain.ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
