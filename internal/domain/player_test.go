package domain

import (
	"math"
	"testing"
)

func mustPlayer(t *testing.T, rank Rank, region Region, main, secondary, tertiary []Role, shotCaller bool) Player {
	t.Helper()
	player, err := NewPlayer("test", rank, region, main, secondary, tertiary, shotCaller)
	if err != nil {
		t.Fatal(err)
	}
	return player
}

func TestPlayer_BasePoints(t *testing.T) {
	tests := []struct {
		name   string
		rank   Rank
		region Region
		main   []Role
		want   float64
	}{
		{name: "gold top", rank: Gold, region: RegionOthers, main: []Role{Top}, want: 19},
		{name: "gold top korea", rank: Gold, region: RegionKorea, main: []Role{Top}, want: 20},
		{name: "challenger jgl china", rank: Challenger, region: RegionChina, main: []Role{Jungle}, want: 52},
		{name: "iron sup", rank: Iron, region: RegionOthers, main: []Role{Support}, want: 11},
		{name: "first main role wins", rank: Gold, region: RegionOthers, main: []Role{Mid, Top}, want: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPlayer(t, tt.rank, tt.region, tt.main, nil, nil, false)
			if got := p.BasePoints(); got != tt.want {
				t.Errorf("BasePoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayer_AssignedPoints(t *testing.T) {
	// Gold from Korea: main top, secondary mid, tertiary sup.
	p := mustPlayer(t, Gold, RegionKorea, []Role{Top}, []Role{Mid}, []Role{Support}, false)
	tests := []struct {
		role Role
		want float64
	}{
		{Top, 20},     // main representative: top 19 + 1
		{Mid, 17},     // secondary representative: mid 16 + 1
		{Support, 20}, // tertiary representative: sup 19 + 1
		{Jungle, 1},   // unplayable, region bonus only
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := p.AssignedPoints(tt.role); got != tt.want {
				t.Errorf("AssignedPoints(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestPlayer_StandardAdjustment(t *testing.T) {
	p := mustPlayer(t, Gold, RegionOthers, []Role{Top}, []Role{Mid}, []Role{Support}, false)
	tests := []struct {
		role Role
		want float64
	}{
		{Top, 2.5},
		{Mid, -1.5},
		{Support, -5.0},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := p.StandardAdjustment(tt.role); got != tt.want {
				t.Errorf("StandardAdjustment(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
	if got := p.StandardAdjustment(Jungle); !math.IsInf(got, -1) {
		t.Errorf("StandardAdjustment(jgl) = %v, want -Inf", got)
	}
}

func TestPlayer_AdvancedAdjustment(t *testing.T) {
	p := mustPlayer(t, Gold, RegionKorea, []Role{Top}, []Role{Mid}, []Role{Support}, false)
	tests := []struct {
		role Role
		want float64
	}{
		{Top, 20 * 0.02},
		{Mid, 17 * -0.02},
		{Support, 20 * -0.30},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := p.AdvancedAdjustment(tt.role); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AdvancedAdjustment(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
	if got := p.AdvancedAdjustment(Jungle); !math.IsInf(got, -1) {
		t.Errorf("AdvancedAdjustment(jgl) = %v, want -Inf", got)
	}
}

func TestPlayer_ShotCallerBonus(t *testing.T) {
	caller := mustPlayer(t, Gold, RegionOthers, []Role{Top}, nil, nil, true)
	if got := caller.ShotCallerBonus(); got != 0.5 {
		t.Errorf("ShotCallerBonus() = %v, want 0.5", got)
	}
	quiet := mustPlayer(t, Gold, RegionOthers, []Role{Top}, nil, nil, false)
	if got := quiet.ShotCallerBonus(); got != 0 {
		t.Errorf("ShotCallerBonus() = %v, want 0", got)
	}
}

func TestPlayer_Flexibility(t *testing.T) {
	p := mustPlayer(t, Gold, RegionOthers, []Role{Top}, []Role{Mid, Support}, nil, false)
	if got := p.Flexibility(); got != 3 {
		t.Errorf("Flexibility() = %v, want 3", got)
	}
}
