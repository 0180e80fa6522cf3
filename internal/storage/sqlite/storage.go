package sqlite

import (
	"database/sql"
	"fmt"

	"teambalancer/internal/domain"
	"teambalancer/internal/storage"

	"github.com/google/uuid"
)

type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

const playerColumns = "id, name, rank, region, shot_caller, main_roles, secondary_roles, tertiary_roles, created_at"

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	rows, err := s.db.Query("SELECT " + playerColumns + " FROM players ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var row playerRow
		err := rows.Scan(&row.ID, &row.Name, &row.Rank, &row.Region, &row.ShotCaller,
			&row.MainRoles, &row.SecondaryRoles, &row.TertiaryRoles, &row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		player, err := convertPlayerToDomain(row)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var row playerRow
	err := s.db.QueryRow("SELECT "+playerColumns+" FROM players WHERE id = ?", id.String()).
		Scan(&row.ID, &row.Name, &row.Rank, &row.Region, &row.ShotCaller,
			&row.MainRoles, &row.SecondaryRoles, &row.TertiaryRoles, &row.CreatedAt)
	if err != nil {
		return domain.Player{}, fmt.Errorf("get player %s: %w", id, err)
	}
	return convertPlayerToDomain(row)
}

func (s *Storage) Add(player domain.Player) (domain.Player, error) {
	row := convertPlayerFromDomain(player)
	_, err := s.db.Exec(
		"INSERT INTO players ("+playerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		row.ID, row.Name, row.Rank, row.Region, row.ShotCaller,
		row.MainRoles, row.SecondaryRoles, row.TertiaryRoles, row.CreatedAt)
	if err != nil {
		return domain.Player{}, fmt.Errorf("add player %q: %w", player.Name, err)
	}
	return player, nil
}

func (s *Storage) Delete(id uuid.UUID) error {
	_, err := s.db.Exec("DELETE FROM players WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete player %s: %w", id, err)
	}
	return nil
}

// ImportPlayers replaces the whole roster in one transaction.
func (s *Storage) ImportPlayers(players []domain.Player) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}
	for _, player := range players {
		row := convertPlayerFromDomain(player)
		_, err := tx.Exec(
			"INSERT INTO players ("+playerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			row.ID, row.Name, row.Rank, row.Region, row.ShotCaller,
			row.MainRoles, row.SecondaryRoles, row.TertiaryRoles, row.CreatedAt)
		if err != nil {
			return fmt.Errorf("import player %q: %w", player.Name, err)
		}
	}
	return tx.Commit()
}
