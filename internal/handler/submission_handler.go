package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"connections/backend/internal/database"
	"connections/backend/internal/models"
	"connections/backend/internal/store"
)

// SubmissionInput is the payload the game client posts when a playthrough
// finishes. Field names follow the client's camelCase convention.
type SubmissionInput struct {
	GameCode         string     `json:"gameCode" binding:"required"`
	SubmittedGuesses [][]string `json:"submittedGuesses" binding:"required"`
	TimeToGuess      []float64  `json:"timeToGuess"`
	IsGameWon        bool       `json:"isGameWon"`
}

func (in *SubmissionInput) validate() error {
	if len(in.SubmittedGuesses) == 0 {
		return &store.ValidationError{Field: "submittedGuesses", Reason: "must not be empty"}
	}
	if len(in.TimeToGuess) != len(in.SubmittedGuesses) {
		return &store.ValidationError{Field: "timeToGuess", Reason: "length must match submittedGuesses"}
	}
	for _, group := range in.SubmittedGuesses {
		if len(group) == 0 {
			return &store.ValidationError{Field: "submittedGuesses", Reason: "guess groups must not be empty"}
		}
	}
	return nil
}

// CreateSubmission godoc
// @Summary      Record a playthrough
// @Description  Persists the guesses, per-guess times and outcome of one play of a game. Submissions are immutable.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        input body SubmissionInput true "Playthrough record"
// @Success      201 {object} map[string]string "{"message": "Submission recorded"}"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /submit [post]
func CreateSubmission(c *gin.Context) {
	var input SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	st := store.New(database.DB)

	game, err := st.FindGameByCode(ctx, input.GameCode)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found for this code"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	sub := models.Submission{
		GameID:    game.ID,
		Guesses:   input.SubmittedGuesses,
		TimeTaken: input.TimeToGuess,
		IsWon:     input.IsGameWon,
	}
	if err := st.CreateSubmission(ctx, &sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Submission recorded"})
}

// SubmissionResponse is the raw playthrough record as stored.
type SubmissionResponse struct {
	ID          uint       `json:"id"`
	GameID      uint       `json:"game_id"`
	Guesses     [][]string `json:"guesses"`
	TimeTaken   []float64  `json:"time_taken"`
	IsWon       bool       `json:"is_won"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

// PaginatedSubmissionResponse defines the structure for a paginated list of submissions.
type PaginatedSubmissionResponse struct {
	Data []SubmissionResponse `json:"data"`
	Meta PaginationMeta       `json:"meta"`
}

func newSubmissionResponse(sub models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          sub.ID,
		GameID:      sub.GameID,
		Guesses:     sub.Guesses,
		TimeTaken:   sub.TimeTaken,
		IsWon:       sub.IsWon,
		SubmittedAt: sub.SubmittedAt,
	}
}

// GetSubmissions godoc
// @Summary      List submissions
// @Description  Retrieves a paginated list of raw submission records, newest first, optionally filtered by game.
// @Tags         admin-submissions
// @Produce      json
// @Security     BearerAuth
// @Param        game_id query  int  false  "Filter by game"
// @Param        page    query  int  false  "Page number" default(1)
// @Param        limit   query  int  false  "Items per page" default(10)
// @Success      200 {object} PaginatedSubmissionResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/submissions [get]
func GetSubmissions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	query := database.DB.Model(&models.Submission{})
	if raw := c.Query("game_id"); raw != "" {
		if id, parseErr := strconv.ParseUint(raw, 10, 32); parseErr == nil {
			query = query.Where("game_id = ?", uint(id))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count submissions"})
		return
	}

	var subs []models.Submission
	err = query.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&subs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve submissions"})
		return
	}

	response := make([]SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		response = append(response, newSubmissionResponse(sub))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, total, page, limit))
}
