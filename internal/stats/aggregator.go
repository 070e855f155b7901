// Package stats computes per-game statistics over the submission log. Every
// call recomputes from scratch over a consistent read of the game's
// submissions; per-game sets are small and nothing here caches.
package stats

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"connections/backend/internal/models"
	"connections/backend/internal/store"
)

// Reader is the read-only slice of the store the aggregator needs.
type Reader interface {
	FindGameByCode(ctx context.Context, code string) (*models.Game, error)
	ListSubmissions(ctx context.Context, gameID uint) ([]models.Submission, error)
	ListCorrectGroups(ctx context.Context, gameID uint) ([][]string, error)
	CountSubmissions(ctx context.Context, gameID uint) (total, wins int64, err error)
}

// TimeStat is the average solve time of one correct group and the number of
// samples it was computed from.
type TimeStat struct {
	Average float64 `json:"average_seconds"`
	Count   int     `json:"count"`
}

// Counts is the submission tally of a game.
type Counts struct {
	Total int64 `json:"submission_count"`
	Wins  int64 `json:"wins"`
}

// Aggregator answers the statistics queries for a single game, identified by
// its game code.
//
// CreditAtIteration controls which time sample is credited when a submission
// contains the same guess group more than once. Off (the historical behavior),
// the time of the first identical group in the guess sequence is credited every
// time; on, the time at the position currently being iterated is used.
type Aggregator struct {
	store             Reader
	CreditAtIteration bool
}

func New(store Reader) *Aggregator {
	return &Aggregator{store: store}
}

// GroupKey canonicalizes a guess group: the words sorted lexicographically and
// serialized as a JSON array. Words may contain any delimiter character, so
// joining with a separator would not be injective.
func GroupKey(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	b, _ := json.Marshal(sorted)
	return string(b)
}

// GuessDistribution counts how often each distinct word combination was
// submitted across all plays of the game, correct or not.
func (a *Aggregator) GuessDistribution(ctx context.Context, code string) (map[string]int, error) {
	subs, err := a.submissions(ctx, code)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int)
	for _, sub := range subs {
		for _, group := range sub.Guesses {
			dist[GroupKey(group)]++
		}
	}
	return dist, nil
}

// AverageTimePerCategory averages, per correct category group, the time
// players spent before submitting that exact word set. Groups no player ever
// matched are absent from the result.
func (a *Aggregator) AverageTimePerCategory(ctx context.Context, code string) (map[string]TimeStat, error) {
	game, err := a.store.FindGameByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	subs, err := a.nonEmptySubmissions(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	groups, err := a.store.ListCorrectGroups(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	correct := make(map[string]bool, len(groups))
	for _, g := range groups {
		correct[GroupKey(g)] = true
	}

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, sub := range subs {
		for i, group := range sub.Guesses {
			key := GroupKey(group)
			if !correct[key] {
				continue
			}
			at := i
			if !a.CreditAtIteration {
				at = firstIndexOf(sub.Guesses, group)
			}
			if at < 0 || at >= len(sub.TimeTaken) {
				continue
			}
			totals[key] += sub.TimeTaken[at]
			counts[key]++
		}
	}

	result := make(map[string]TimeStat, len(counts))
	for key, n := range counts {
		result[key] = TimeStat{
			Average: round2(totals[key] / float64(n)),
			Count:   n,
		}
	}
	return result, nil
}

// SubmissionCount reports the total plays and wins of a game. Unlike the two
// distribution queries, a game with zero submissions is a valid answer here.
func (a *Aggregator) SubmissionCount(ctx context.Context, code string) (Counts, error) {
	game, err := a.store.FindGameByCode(ctx, code)
	if err != nil {
		return Counts{}, err
	}
	total, wins, err := a.store.CountSubmissions(ctx, game.ID)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Total: total, Wins: wins}, nil
}

func (a *Aggregator) submissions(ctx context.Context, code string) ([]models.Submission, error) {
	game, err := a.store.FindGameByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return a.nonEmptySubmissions(ctx, game.ID)
}

func (a *Aggregator) nonEmptySubmissions(ctx context.Context, gameID uint) ([]models.Submission, error) {
	subs, err := a.store.ListSubmissions(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, store.ErrNoData
	}
	return subs, nil
}

// firstIndexOf locates the first guess group equal, element for element and in
// order, to the given one. Comparison is over the raw unsorted groups, so two
// orderings of the same word set are distinct occurrences.
func firstIndexOf(guesses [][]string, group []string) int {
	for i, g := range guesses {
		if equalGroup(g, group) {
			return i
		}
	}
	return -1
}

func equalGroup(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// round2 rounds to two decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
