package domain

import (
	"errors"
	"fmt"
)

type Role int

const (
	Top Role = iota
	Jungle
	Mid
	Bot
	Support

	NumRoles = 5
)

// Roles in lane order. This order is fixed and used for assignment
// slots and per-lane metrics.
var Roles = [NumRoles]Role{Top, Jungle, Mid, Bot, Support}

var roleNames = [NumRoles]string{"top", "jgl", "mid", "bot", "sup"}

var ErrUnknownRole = errors.New("unknown role")

func (r Role) String() string {
	if r < 0 || r >= NumRoles {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

func (r Role) Valid() bool {
	return r >= 0 && r < NumRoles
}

func ParseRole(s string) (Role, error) {
	for i := range roleNames {
		if roleNames[i] == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

type Rank int

const (
	Iron Rank = iota
	Bronze
	Silver
	Gold
	Platinum
	Emerald
	Diamond
	Master
	Grandmaster
	Challenger

	NumRanks = 10
)

var rankNames = [NumRanks]string{
	"iron", "bronze", "silver", "gold", "platinum",
	"emerald", "diamond", "master", "grandmaster", "challenger",
}

var ErrUnknownRank = errors.New("unknown rank")

func (r Rank) String() string {
	if r < 0 || r >= NumRanks {
		return fmt.Sprintf("rank(%d)", int(r))
	}
	return rankNames[r]
}

func ParseRank(s string) (Rank, error) {
	for i := range rankNames {
		if rankNames[i] == s {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

func Ranks() []Rank {
	ranks := make([]Rank, NumRanks)
	for i := range ranks {
		ranks[i] = Rank(i)
	}
	return ranks
}

type Region int

const (
	RegionOthers Region = iota
	RegionKorea
	RegionChina

	NumRegions = 3
)

var regionNames = [NumRegions]string{"others", "korea", "china"}

var ErrUnknownRegion = errors.New("unknown region")

func (r Region) String() string {
	if r < 0 || r >= NumRegions {
		return fmt.Sprintf("region(%d)", int(r))
	}
	return regionNames[r]
}

func ParseRegion(s string) (Region, error) {
	for i := range regionNames {
		if regionNames[i] == s {
			return Region(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

func Regions() []Region {
	regions := make([]Region, NumRegions)
	for i := range regions {
		regions[i] = Region(i)
	}
	return regions
}

// HighSkill reports whether the region grants the flat scoring bonus.
func (r Region) HighSkill() bool {
	return r == RegionKorea || r == RegionChina
}

func (r Region) Bonus() float64 {
	if r.HighSkill() {
		return 1
	}
	return 0
}

// pointTable holds per-rank per-role points, calibrated from solo queue
// lane averages. Indexed [Rank][Role].
var pointTable = [NumRanks][NumRoles]float64{
	Iron:        {8, 4, 8, 7, 11},
	Bronze:      {8, 4, 8, 7, 11},
	Silver:      {13, 8, 10, 8, 13},
	Gold:        {19, 17, 16, 16, 19},
	Platinum:    {23, 25, 24, 21, 23},
	Emerald:     {28, 31, 31, 25, 27},
	Diamond:     {31, 34, 34, 28, 30},
	Master:      {39, 47, 46, 40, 40},
	Grandmaster: {43, 47, 46, 40, 40},
	Challenger:  {46, 51, 50, 44, 43},
}

// Points returns the table entry for a rank playing a role.
func Points(rank Rank, role Role) float64 {
	return pointTable[rank][role]
}
