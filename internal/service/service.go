package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"teambalancer/internal/balance"
	"teambalancer/internal/cache/mem"
	"teambalancer/internal/domain"
	"teambalancer/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerService struct {
	playerStorage storage.PlayerStorage
	cache         *mem.Cache
	log           *logrus.Entry
}

func New(playerStorage storage.PlayerStorage, log *logrus.Logger) *PlayerService {
	return &PlayerService{
		playerStorage: playerStorage,
		cache:         mem.New(),
		log:           log.WithField("name", "player_service"),
	}
}

// ListPlayers serves the roster from the cache when it is valid; the
// cache is dropped on every mutation, so a valid cache is authoritative.
func (s *PlayerService) ListPlayers() ([]domain.Player, error) {
	if s.cache.Valid() {
		return s.cache.List(), nil
	}
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return nil, err
	}
	s.cache.Update(players)
	return players, nil
}

func (s *PlayerService) Get(id uuid.UUID) (domain.Player, error) {
	player, err := s.playerStorage.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *PlayerService) GetByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	if _, err := s.ListPlayers(); err != nil {
		return domain.Player{}, err
	}
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return domain.Player{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}
	return player, nil
}

// AddPlayer validates the preference tiers and stores the player.
func (s *PlayerService) AddPlayer(name string, rank domain.Rank, region domain.Region, main, secondary, tertiary []domain.Role, shotCaller bool) (domain.Player, error) {
	player, err := domain.NewPlayer(name, rank, region, main, secondary, tertiary, shotCaller)
	if err != nil {
		return domain.Player{}, err
	}
	created, err := s.playerStorage.Add(player)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate()
	s.log.WithField("player", created.Name).Info("player added")
	return created, nil
}

func (s *PlayerService) DeletePlayers(ids []uuid.UUID) error {
	for _, id := range ids {
		if err := s.playerStorage.Delete(id); err != nil {
			return err
		}
	}
	s.cache.Invalidate()
	s.log.WithField("count", len(ids)).Info("players deleted")
	return nil
}

// Generate runs the composition search over the selected players. With no
// selection the whole roster is used.
func (s *PlayerService) Generate(ctx context.Context, ids []uuid.UUID, topN int, mode balance.Mode) ([]balance.Composition, error) {
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	pool := players
	if len(ids) > 0 {
		selected := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			selected[id] = true
		}
		pool = make([]domain.Player, 0, len(ids))
		for _, player := range players {
			if selected[player.ID] {
				pool = append(pool, player)
			}
		}
	}
	started := time.Now()
	compositions, err := balance.Search(ctx, pool, topN, mode)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"pool":    len(pool),
		"mode":    mode.String(),
		"results": len(compositions),
		"took":    time.Since(started).String(),
	}).Info("compositions generated")
	return compositions, nil
}
