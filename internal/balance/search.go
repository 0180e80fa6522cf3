package balance

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"teambalancer/internal/domain"
)

const (
	// MatchSize is the number of players a single match consumes.
	MatchSize = 10
	// DefaultTopN is the number of compositions reported when the caller
	// does not ask for a specific count.
	DefaultTopN = 5

	splitsPerMatch = 252   // C(10,5) ways to pick the red five
	pairsPerSplit  = 14400 // 120 * 120 assignment pairs at most
)

var ErrNotEnoughPlayers = errors.New("not enough players")

// Composition is one fully assigned red-vs-blue match with its balance
// metrics. Records are immutable results of Search.
type Composition struct {
	Red       Assignment
	Blue      Assignment
	RedScore  float64
	BlueScore float64
	TValue    float64
	LValue    float64
}

// Balance is the combined metric compositions are ranked by.
func (c Composition) Balance() float64 {
	return c.TValue + c.LValue
}

// Search enumerates every ten-player subset of the pool, every five-five
// split of each subset, and every valid assignment pair for each split,
// and returns the limit most balanced compositions ordered by ascending
// T+L. Ties keep enumeration order. A split and its mirror both count;
// the ranked output therefore contains side-swapped twins.
//
// Matches are scored on worker goroutines. Every composition carries an
// ordinal derived from its enumeration indices, so the ranking does not
// depend on scheduling and repeated calls return identical lists.
func Search(ctx context.Context, pool []domain.Player, limit int, mode Mode) ([]Composition, error) {
	if len(pool) < MatchSize {
		return nil, fmt.Errorf("%w: selected %d of %d", ErrNotEnoughPlayers, len(pool), MatchSize)
	}
	if limit <= 0 {
		limit = DefaultTopN
	}

	acc := newTopN(limit)
	jobs := make(chan matchJob)

	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				scoreMatch(ctx, job, mode, acc)
			}
		}()
	}

	var matchOrd uint64
	combinations(len(pool), MatchSize, func(idx []int) bool {
		team := make([]domain.Player, MatchSize)
		for i, poolIdx := range idx {
			team[i] = pool[poolIdx]
		}
		job := matchJob{
			team: team,
			ord:  matchOrd * splitsPerMatch * pairsPerSplit,
		}
		matchOrd++
		select {
		case jobs <- job:
			return true
		case <-ctx.Done():
			return false
		}
	})
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return acc.results(), nil
}

type matchJob struct {
	team []domain.Player // exactly ten players
	ord  uint64          // ordinal of the first composition of this match
}

// scoreMatch walks all five-five splits of one ten-player match. A split
// whose side has no valid assignment contributes nothing. Once the
// accumulator is full, pairs whose T alone is worse than the retained
// worst key are skipped before L is computed; L is non-negative, so the
// skip never changes the reported set.
func scoreMatch(ctx context.Context, job matchJob, mode Mode, acc *topN) {
	red := make([]domain.Player, domain.NumRoles)
	blue := make([]domain.Player, 0, domain.NumRoles)

	var splitOrd uint64
	combinations(MatchSize, domain.NumRoles, func(idx []int) bool {
		if ctx.Err() != nil {
			return false
		}
		ord := job.ord + splitOrd*pairsPerSplit
		splitOrd++

		inRed := 0
		blue = blue[:0]
		for i, p := range job.team {
			if inRed < len(idx) && idx[inRed] == i {
				red[inRed] = p
				inRed++
			} else {
				blue = append(blue, p)
			}
		}

		redAssigns := EnumerateAssignments(red)
		if len(redAssigns) == 0 {
			return true
		}
		blueAssigns := EnumerateAssignments(blue)
		if len(blueAssigns) == 0 {
			return true
		}

		blueScores := make([]float64, len(blueAssigns))
		for j, ba := range blueAssigns {
			blueScores[j] = mode.TeamScore(ba)
		}
		for i, ra := range redAssigns {
			redScore := mode.TeamScore(ra)
			for j, ba := range blueAssigns {
				t := TValue(redScore, blueScores[j])
				pairOrd := ord + uint64(i*len(blueAssigns)+j)
				if worst, full := acc.threshold(); full && t > worst {
					continue
				}
				l := mode.LValue(ra, ba)
				acc.offer(Composition{
					Red:       ra,
					Blue:      ba,
					RedScore:  redScore,
					BlueScore: blueScores[j],
					TValue:    t,
					LValue:    l,
				}, t+l, pairOrd)
			}
		}
		return true
	})
}

// combinations calls fn with every k-subset of [0,n), as ascending index
// slices in lexicographic order. fn returns false to stop. The slice is
// reused between calls.
func combinations(n, k int, fn func(idx []int) bool) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
