package storage

import (
	"teambalancer/internal/domain"

	"github.com/google/uuid"
)

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(uuid.UUID) (domain.Player, error)
	Add(domain.Player) (domain.Player, error)
	Delete(uuid.UUID) error

	ImportPlayers([]domain.Player) error
}
