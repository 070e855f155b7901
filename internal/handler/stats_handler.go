package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"connections/backend/internal/database"
	"connections/backend/internal/stats"
	"connections/backend/internal/store"
)

func newAggregator() *stats.Aggregator {
	return stats.New(store.New(database.DB))
}

// statsError maps the aggregator's error taxonomy onto HTTP. A game with no
// submissions is reported, not treated as an internal failure.
func statsError(c *gin.Context, err error) {
	switch err {
	case store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found for this code"})
	case store.ErrNoData:
		c.JSON(http.StatusBadRequest, gin.H{"error": "No submissions found for this game"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
	}
}

// GetGuessDistribution godoc
// @Summary      Guess distribution
// @Description  Counts how often each word combination was submitted, correct or not. Keys are JSON arrays of the sorted words.
// @Tags         stats
// @Produce      json
// @Param        code path string true "Game Code"
// @Success      200 {object} map[string]int
// @Failure      400 {object} ErrorResponse "No submissions for this game"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/code/{code}/stats/guess-distribution [get]
func GetGuessDistribution(c *gin.Context) {
	dist, err := newAggregator().GuessDistribution(c.Request.Context(), c.Param("code"))
	if err != nil {
		statsError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// GetAverageTimePerCategory godoc
// @Summary      Average solve time per category
// @Description  Averages the time players spent before submitting each correct category group. Categories never matched are omitted.
// @Tags         stats
// @Produce      json
// @Param        code path string true "Game Code"
// @Success      200 {object} map[string]stats.TimeStat
// @Failure      400 {object} ErrorResponse "No submissions for this game"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/code/{code}/stats/average-time [get]
func GetAverageTimePerCategory(c *gin.Context) {
	averages, err := newAggregator().AverageTimePerCategory(c.Request.Context(), c.Param("code"))
	if err != nil {
		statsError(c, err)
		return
	}
	c.JSON(http.StatusOK, averages)
}

// GetSubmissionCount godoc
// @Summary      Submission count
// @Description  Total plays and wins recorded for a game.
// @Tags         stats
// @Produce      json
// @Param        code path string true "Game Code"
// @Success      200 {object} stats.Counts
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/code/{code}/stats/submissions [get]
func GetSubmissionCount(c *gin.Context) {
	counts, err := newAggregator().SubmissionCount(c.Request.Context(), c.Param("code"))
	if err != nil {
		statsError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
