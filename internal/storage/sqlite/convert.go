package sqlite

import (
	"fmt"
	"time"

	"teambalancer/internal/domain"

	"github.com/google/uuid"
)

// playerRow mirrors the players table, one column per roster file field.
type playerRow struct {
	ID             string
	Name           string
	Rank           string
	Region         string
	ShotCaller     bool
	MainRoles      string
	SecondaryRoles string
	TertiaryRoles  string
	CreatedAt      time.Time
}

func convertPlayerToDomain(row playerRow) (domain.Player, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	rank, err := domain.ParseRank(row.Rank)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	region, err := domain.ParseRegion(row.Region)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	main, err := domain.SplitRoles(row.MainRoles)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	secondary, err := domain.SplitRoles(row.SecondaryRoles)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	tertiary, err := domain.SplitRoles(row.TertiaryRoles)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	pref, err := domain.NewRolePreference(main, secondary, tertiary)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", row.Name, err)
	}
	return domain.Player{
		ID:           id,
		Name:         row.Name,
		Rank:         rank,
		Region:       region,
		Preference:   pref,
		ShotCaller:   row.ShotCaller,
		RegisteredAt: row.CreatedAt,
	}, nil
}

func convertPlayerFromDomain(player domain.Player) playerRow {
	return playerRow{
		ID:             player.ID.String(),
		Name:           player.Name,
		Rank:           player.Rank.String(),
		Region:         player.Region.String(),
		ShotCaller:     player.ShotCaller,
		MainRoles:      domain.JoinRoles(player.Preference.Main()),
		SecondaryRoles: domain.JoinRoles(player.Preference.Secondary()),
		TertiaryRoles:  domain.JoinRoles(player.Preference.Tertiary()),
		CreatedAt:      player.RegisteredAt,
	}
}
