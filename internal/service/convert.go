package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"teambalancer/internal/domain"
)

// The roster file is row-oriented: one player per row, role tiers
// serialized as delimiter-joined lists.
var csvHeader = []string{"name", "rank", "region", "shot_caller", "main_roles", "secondary_roles", "tertiary_roles"}

// ExportCSV renders the roster as a roster file.
func (s *PlayerService) ExportCSV() ([]byte, error) {
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, player := range players {
		record := []string{
			player.Name,
			player.Rank.String(),
			player.Region.String(),
			strconv.FormatBool(player.ShotCaller),
			domain.JoinRoles(player.Preference.Main()),
			domain.JoinRoles(player.Preference.Secondary()),
			domain.JoinRoles(player.Preference.Tertiary()),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportCSV replaces the roster with the file contents. Every row is
// validated before anything is written; a bad row fails the whole import.
func (s *PlayerService) ImportCSV(data []byte) error {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("empty roster file")
	}
	players := make([]domain.Player, 0, len(records)-1)
	for i, record := range records[1:] {
		player, err := convertRecord(record)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		players = append(players, player)
	}
	if err := s.playerStorage.ImportPlayers(players); err != nil {
		return err
	}
	s.cache.Invalidate()
	s.log.WithField("count", len(players)).Info("roster imported")
	return nil
}

func convertRecord(record []string) (domain.Player, error) {
	rank, err := domain.ParseRank(record[1])
	if err != nil {
		return domain.Player{}, err
	}
	region, err := domain.ParseRegion(record[2])
	if err != nil {
		return domain.Player{}, err
	}
	shotCaller, err := strconv.ParseBool(record[3])
	if err != nil {
		return domain.Player{}, fmt.Errorf("shot_caller: %w", err)
	}
	main, err := domain.SplitRoles(record[4])
	if err != nil {
		return domain.Player{}, err
	}
	secondary, err := domain.SplitRoles(record[5])
	if err != nil {
		return domain.Player{}, err
	}
	tertiary, err := domain.SplitRoles(record[6])
	if err != nil {
		return domain.Player{}, err
	}
	return domain.NewPlayer(record[0], rank, region, main, secondary, tertiary, shotCaller)
}
