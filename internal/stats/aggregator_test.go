package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connections/backend/internal/models"
	"connections/backend/internal/stats"
	"connections/backend/internal/store"
)

// fakeStore is the in-memory stand-in for the data-access layer.
type fakeStore struct {
	games  map[string]*models.Game
	subs   map[uint][]models.Submission
	groups map[uint][][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		games:  make(map[string]*models.Game),
		subs:   make(map[uint][]models.Submission),
		groups: make(map[uint][][]string),
	}
}

func (f *fakeStore) addGame(code string, correctGroups ...[]string) uint {
	id := uint(len(f.games) + 1)
	f.games[code] = &models.Game{GameCode: code}
	f.games[code].ID = id
	f.groups[id] = correctGroups
	return id
}

func (f *fakeStore) addSubmission(gameID uint, guesses [][]string, times []float64, won bool) {
	f.subs[gameID] = append(f.subs[gameID], models.Submission{
		GameID:    gameID,
		Guesses:   guesses,
		TimeTaken: times,
		IsWon:     won,
	})
}

func (f *fakeStore) FindGameByCode(_ context.Context, code string) (*models.Game, error) {
	game, ok := f.games[code]
	if !ok {
		return nil, store.ErrNotFound
	}
	return game, nil
}

func (f *fakeStore) ListSubmissions(_ context.Context, gameID uint) ([]models.Submission, error) {
	return f.subs[gameID], nil
}

func (f *fakeStore) ListCorrectGroups(_ context.Context, gameID uint) ([][]string, error) {
	return f.groups[gameID], nil
}

func (f *fakeStore) CountSubmissions(_ context.Context, gameID uint) (total, wins int64, err error) {
	for _, sub := range f.subs[gameID] {
		total++
		if sub.IsWon {
			wins++
		}
	}
	return total, wins, nil
}

func TestGuessDistribution_NormalizesGroupOrder(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF")
	fs.addSubmission(id, [][]string{{"b", "a"}}, []float64{5.0}, false)
	fs.addSubmission(id, [][]string{{"a", "b"}}, []float64{7.0}, true)

	dist, err := stats.New(fs).GuessDistribution(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"a", "b"})
	assert.Equal(t, map[string]int{key: 2}, dist)
}

func TestGuessDistribution_CountsWrongGuesses(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	fs.addSubmission(id, [][]string{{"cat", "fish"}, {"cat", "dog"}}, []float64{3.0, 4.0}, true)

	dist, err := stats.New(fs).GuessDistribution(context.Background(), "BCDF")
	require.NoError(t, err)

	assert.Equal(t, 1, dist[stats.GroupKey([]string{"cat", "fish"})])
	assert.Equal(t, 1, dist[stats.GroupKey([]string{"cat", "dog"})])
}

func TestGuessDistribution_GameNotFound(t *testing.T) {
	_, err := stats.New(newFakeStore()).GuessDistribution(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGuessDistribution_NoSubmissions(t *testing.T) {
	fs := newFakeStore()
	fs.addGame("BCDF")

	_, err := stats.New(fs).GuessDistribution(context.Background(), "BCDF")
	assert.ErrorIs(t, err, store.ErrNoData)
}

func TestAverageTime_AveragesMatchedGroups(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	fs.addSubmission(id, [][]string{{"cat", "dog"}}, []float64{10.0}, true)
	fs.addSubmission(id, [][]string{{"dog", "cat"}}, []float64{20.0}, true)

	averages, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"cat", "dog"})
	require.Contains(t, averages, key)
	assert.Equal(t, stats.TimeStat{Average: 15.0, Count: 2}, averages[key])
}

func TestAverageTime_OmitsUnmatchedGroups(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"}, []string{"red", "blue"})
	fs.addSubmission(id, [][]string{{"cat", "dog"}}, []float64{10.0}, false)

	averages, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	assert.Len(t, averages, 1)
	assert.NotContains(t, averages, stats.GroupKey([]string{"blue", "red"}))
}

func TestAverageTime_IgnoresWrongGuesses(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	fs.addSubmission(id, [][]string{{"cat", "fish"}, {"cat", "dog"}}, []float64{8.0, 12.0}, true)

	averages, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"cat", "dog"})
	assert.Equal(t, stats.TimeStat{Average: 12.0, Count: 1}, averages[key])
}

func TestAverageTime_DuplicateGroupCreditsFirstOccurrence(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	// The same exact group twice: both iterations credit the time at its first
	// position in the guess sequence.
	fs.addSubmission(id, [][]string{{"cat", "dog"}, {"cat", "dog"}}, []float64{10.0, 30.0}, true)

	averages, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"cat", "dog"})
	assert.Equal(t, stats.TimeStat{Average: 10.0, Count: 2}, averages[key])
}

func TestAverageTime_DuplicateGroupCreditAtIteration(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	fs.addSubmission(id, [][]string{{"cat", "dog"}, {"cat", "dog"}}, []float64{10.0, 30.0}, true)

	agg := stats.New(fs)
	agg.CreditAtIteration = true
	averages, err := agg.AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"cat", "dog"})
	assert.Equal(t, stats.TimeStat{Average: 20.0, Count: 2}, averages[key])
}

func TestAverageTime_ReorderedDuplicateIsDistinctOccurrence(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	// Same word set, different order: the lookup is over the raw groups, so
	// each occurrence credits its own time.
	fs.addSubmission(id, [][]string{{"cat", "dog"}, {"dog", "cat"}}, []float64{10.0, 30.0}, true)

	averages, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"cat", "dog"})
	assert.Equal(t, stats.TimeStat{Average: 20.0, Count: 2}, averages[key])
}

func TestAverageTime_RoundsToTwoDecimals(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF", []string{"cat", "dog"})
	fs.addSubmission(id, [][]string{{"cat", "dog"}}, []float64{3.333}, true)
	fs.addSubmission(id, [][]string{{"cat", "dog"}}, []float64{3.334}, true)

	averages, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	require.NoError(t, err)

	key := stats.GroupKey([]string{"cat", "dog"})
	assert.InDelta(t, 3.33, averages[key].Average, 1e-9)
}

func TestAverageTime_NoSubmissions(t *testing.T) {
	fs := newFakeStore()
	fs.addGame("BCDF", []string{"cat", "dog"})

	_, err := stats.New(fs).AverageTimePerCategory(context.Background(), "BCDF")
	assert.ErrorIs(t, err, store.ErrNoData)
}

func TestSubmissionCount(t *testing.T) {
	fs := newFakeStore()
	id := fs.addGame("BCDF")
	fs.addSubmission(id, [][]string{{"a"}}, []float64{1.0}, false)
	fs.addSubmission(id, [][]string{{"b"}}, []float64{2.0}, true)
	fs.addSubmission(id, [][]string{{"c"}}, []float64{3.0}, false)

	counts, err := stats.New(fs).SubmissionCount(context.Background(), "BCDF")
	require.NoError(t, err)
	assert.Equal(t, stats.Counts{Total: 3, Wins: 1}, counts)
}

func TestSubmissionCount_ZeroIsNotAnError(t *testing.T) {
	fs := newFakeStore()
	fs.addGame("BCDF")

	counts, err := stats.New(fs).SubmissionCount(context.Background(), "BCDF")
	require.NoError(t, err)
	assert.Equal(t, stats.Counts{}, counts)
}

func TestSubmissionCount_GameNotFound(t *testing.T) {
	_, err := stats.New(newFakeStore()).SubmissionCount(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGroupKey_SortsWords(t *testing.T) {
	assert.Equal(t, stats.GroupKey([]string{"a", "b"}), stats.GroupKey([]string{"b", "a"}))
	assert.Equal(t, `["a","b"]`, stats.GroupKey([]string{"b", "a"}))
}

func TestGroupKey_DelimiterSafe(t *testing.T) {
	// Words containing commas or brackets must not collide with other groups.
	a := stats.GroupKey([]string{`min(2, 3)`, "x"})
	b := stats.GroupKey([]string{`min(2`, ` 3)`, "x"})
	assert.NotEqual(t, a, b)
}
