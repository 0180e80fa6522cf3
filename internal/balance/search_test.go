package balance

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"teambalancer/internal/domain"
)

// specialistPool builds ten players, two mains per role. Only splits with
// one player per role on each side are feasible, so a search over the
// pool scores exactly 2^5 = 32 compositions.
func specialistPool(t *testing.T) []domain.Player {
	t.Helper()
	ranks := [2]domain.Rank{domain.Gold, domain.Platinum}
	var pool []domain.Player
	for i, role := range domain.Roles {
		for j := 0; j < 2; j++ {
			name := role.String() + string(rune('1'+j))
			region := domain.RegionOthers
			if (i+j)%2 == 0 {
				region = domain.RegionKorea
			}
			pool = append(pool, specialist(t, name, ranks[j], region, role, i == 0 && j == 0))
		}
	}
	return pool
}

func TestSearch_NotEnoughPlayers(t *testing.T) {
	pool := specialistPool(t)[:9]
	_, err := Search(context.Background(), pool, 5, Standard)
	if !errors.Is(err, ErrNotEnoughPlayers) {
		t.Fatalf("error = %v, want ErrNotEnoughPlayers", err)
	}
}

func TestSearch_IdenticalPoolIsPerfectlyBalanced(t *testing.T) {
	pool := make([]domain.Player, MatchSize)
	for i := range pool {
		pool[i] = flexPlayer(t, "clone")
	}
	got, err := Search(context.Background(), pool, 5, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d compositions, want 5", len(got))
	}
	for i, comp := range got {
		if comp.TValue != 0 || comp.LValue != 0 {
			t.Errorf("composition %d: T = %v, L = %v, want both 0", i, comp.TValue, comp.LValue)
		}
	}
}

func TestSearch_TopNLimitAndOrder(t *testing.T) {
	pool := specialistPool(t)
	got, err := Search(context.Background(), pool, 3, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d compositions, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Balance() < got[i-1].Balance() {
			t.Errorf("compositions out of order: %v before %v", got[i-1].Balance(), got[i].Balance())
		}
	}
}

func TestSearch_AllFeasibleCompositions(t *testing.T) {
	pool := specialistPool(t)
	got, err := Search(context.Background(), pool, 1000, Standard)
	if err != nil {
		t.Fatal(err)
	}
	// One subset, 32 feasible splits, a single assignment pair each.
	// Side-swapped twins are distinct compositions and both reported.
	if len(got) != 32 {
		t.Fatalf("got %d compositions, want 32", len(got))
	}
}

func TestSearch_Deterministic(t *testing.T) {
	pool := specialistPool(t)
	first, err := Search(context.Background(), pool, 10, Advanced)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Search(context.Background(), pool, 10, Advanced)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated searches returned different rankings")
	}
}

func TestSearch_LimitDoesNotChangeRanking(t *testing.T) {
	// Eleven players with an off-role flex give many subsets with
	// uneven keys, so a small limit keeps the accumulator full and the
	// skip in scoreMatch actually fires.
	pool := append(specialistPool(t),
		specialist(t, "flex", domain.Diamond, domain.RegionChina, domain.Mid, false,
			domain.Top, domain.Support))

	full, err := Search(context.Background(), pool, 100000, Standard)
	if err != nil {
		t.Fatal(err)
	}
	if len(full) <= 25 {
		t.Fatalf("pool yields only %d compositions, pool too small for the test", len(full))
	}

	for _, limit := range []int{1, 3, 7, 25} {
		got, err := Search(context.Background(), pool, limit, Standard)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, full[:limit]) {
			t.Errorf("limit %d: results differ from the unlimited prefix", limit)
		}
	}
}

func TestSearch_ModeChangesScoresNotFeasibility(t *testing.T) {
	pool := specialistPool(t)
	standard, err := Search(context.Background(), pool, 1000, Standard)
	if err != nil {
		t.Fatal(err)
	}
	advanced, err := Search(context.Background(), pool, 1000, Advanced)
	if err != nil {
		t.Fatal(err)
	}
	if len(standard) != len(advanced) {
		t.Errorf("feasible composition count differs: %d standard, %d advanced", len(standard), len(advanced))
	}
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, specialistPool(t), 5, Standard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestCombinations(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return true
	})
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("combinations(4,2) = %v, want %v", got, want)
	}
}

func TestTopN(t *testing.T) {
	acc := newTopN(2)
	acc.offer(Composition{TValue: 3}, 3, 0)
	acc.offer(Composition{TValue: 1}, 1, 1)
	acc.offer(Composition{TValue: 2}, 2, 2)
	got := acc.results()
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].TValue != 1 || got[1].TValue != 2 {
		t.Errorf("results = %v, want keys 1 then 2", got)
	}
}

func TestTopN_TieKeepsDiscoveryOrder(t *testing.T) {
	acc := newTopN(2)
	acc.offer(Composition{RedScore: 2}, 1, 2)
	acc.offer(Composition{RedScore: 1}, 1, 1)
	acc.offer(Composition{RedScore: 3}, 1, 3)
	got := acc.results()
	if got[0].RedScore != 1 || got[1].RedScore != 2 {
		t.Errorf("tie order wrong: %v", got)
	}
}
