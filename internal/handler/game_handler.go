package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"connections/backend/internal/database"
	"connections/backend/internal/gamecode"
	"connections/backend/internal/models"
	"connections/backend/internal/store"
	"connections/backend/pkg/logger"
)

// region --- DTOs ---

// CategoryUpload is one category block of an upload document.
type CategoryUpload struct {
	Category    string   `json:"category" binding:"required"`
	Difficulty  int      `json:"difficulty" binding:"required"`
	Explanation string   `json:"explanation"`
	Words       []string `json:"words" binding:"required"`
}

// GameUpload is the structured document an admin submits to create a game.
type GameUpload struct {
	Title              string           `json:"title" binding:"required"`
	Author             string           `json:"author"`
	SyntaxHighlighting string           `json:"syntax_highlighting"`
	NumCategories      int              `json:"num_categories" binding:"required"`
	WordsPerCategory   int              `json:"words_per_category" binding:"required"`
	Course             string           `json:"course"`
	RelevantInfo       string           `json:"relevant_info"`
	Game               []CategoryUpload `json:"game" binding:"required"`
}

// validate checks the cross-field counts binding tags cannot express. The
// document is rejected before any row is written.
func (in *GameUpload) validate() error {
	if in.NumCategories < 1 {
		return &store.ValidationError{Field: "num_categories", Reason: "must be at least 1"}
	}
	if in.WordsPerCategory < 1 {
		return &store.ValidationError{Field: "words_per_category", Reason: "must be at least 1"}
	}
	if len(in.Game) != in.NumCategories {
		return &store.ValidationError{Field: "game", Reason: "number of categories does not match num_categories"}
	}
	if in.SyntaxHighlighting != "" && !models.ValidSyntaxHighlighting(models.SyntaxHighlighting(in.SyntaxHighlighting)) {
		return &store.ValidationError{Field: "syntax_highlighting", Reason: "must be one of python, java, c, none"}
	}
	for _, cat := range in.Game {
		if cat.Difficulty < 1 {
			return &store.ValidationError{Field: "difficulty", Reason: "must be at least 1"}
		}
		if len(cat.Words) != in.WordsPerCategory {
			return &store.ValidationError{Field: "words", Reason: "word count does not match words_per_category"}
		}
		for _, w := range cat.Words {
			if w == "" {
				return &store.ValidationError{Field: "words", Reason: "words must be non-empty"}
			}
		}
	}
	return nil
}

func (in *GameUpload) toModel(code string, courseID *uint) *models.Game {
	game := &models.Game{
		GameCode:           code,
		Title:              in.Title,
		Author:             in.Author,
		SyntaxHighlighting: models.SyntaxHighlighting(in.SyntaxHighlighting),
		NumCategories:      in.NumCategories,
		WordsPerCategory:   in.WordsPerCategory,
		RelevantInfo:       in.RelevantInfo,
		CourseID:           courseID,
	}
	if game.Author == "" {
		game.Author = "Unknown Author"
	}
	if game.SyntaxHighlighting == "" {
		game.SyntaxHighlighting = models.SyntaxPython
	}
	for _, cat := range in.Game {
		category := models.Category{
			Label:       cat.Category,
			Difficulty:  cat.Difficulty,
			Explanation: cat.Explanation,
		}
		if category.Explanation == "" {
			category.Explanation = "No explanation provided"
		}
		for _, w := range cat.Words {
			category.Words = append(category.Words, models.Word{Text: w})
		}
		game.Categories = append(game.Categories, category)
	}
	return game
}

// CategoryResponse mirrors the category block of the upload document.
type CategoryResponse struct {
	Category    string   `json:"category"`
	Words       []string `json:"words"`
	Difficulty  int      `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// GameResponse is the full game document, categories in difficulty order.
type GameResponse struct {
	ID                 uint               `json:"id"`
	GameCode           string             `json:"game_code"`
	Title              string             `json:"title"`
	Published          bool               `json:"published"`
	SyntaxHighlighting string             `json:"syntax_highlighting"`
	CreatedAt          time.Time          `json:"created_at"`
	Author             string             `json:"author"`
	NumCategories      int                `json:"num_categories"`
	WordsPerCategory   int                `json:"words_per_category"`
	Course             *CourseResponse    `json:"course"`
	RelevantInfo       string             `json:"relevant_info"`
	Game               []CategoryResponse `json:"game"`
}

func newGameResponse(game models.Game) GameResponse {
	resp := GameResponse{
		ID:                 game.ID,
		GameCode:           game.GameCode,
		Title:              game.Title,
		Published:          game.Published,
		SyntaxHighlighting: string(game.SyntaxHighlighting),
		CreatedAt:          game.CreatedAt,
		Author:             game.Author,
		NumCategories:      game.NumCategories,
		WordsPerCategory:   game.WordsPerCategory,
		RelevantInfo:       game.RelevantInfo,
	}
	if game.Course != nil {
		resp.Course = &CourseResponse{
			ID:          game.Course.ID,
			CreatedAt:   game.Course.CreatedAt,
			Name:        game.Course.Name,
			Description: game.Course.Description,
		}
	}
	for _, cat := range game.Categories {
		words := make([]string, 0, len(cat.Words))
		for _, w := range cat.Words {
			words = append(words, w.Text)
		}
		resp.Game = append(resp.Game, CategoryResponse{
			Category:    cat.Label,
			Words:       words,
			Difficulty:  cat.Difficulty,
			Explanation: cat.Explanation,
		})
	}
	return resp
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CourseAssignInput names the course a game should move to.
type CourseAssignInput struct {
	Course string `json:"course" binding:"required"`
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Upload a new game
// @Description  Creates a game with its categories and words from an upload document. The game code is generated server-side.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameUpload true "Game document"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func CreateGame(c *gin.Context) {
	var input GameUpload
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

	var courseID *uint
	if input.Course != "" {
		course, err := st.GetOrCreateCourse(ctx, input.Course, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve course"})
			return
		}
		courseID = &course.ID
	}

	// The generator pre-checks candidates, but a concurrent create can still
	// win the race to the unique constraint; regenerate on conflict.
	gen := gamecode.New(st)
	var game *models.Game
	var err error
	for attempt := 0; attempt < gamecode.MaxAttempts; attempt++ {
		var code string
		code, err = gen.Generate(ctx)
		if err != nil {
			break
		}
		game = input.toModel(code, courseID)
		err = st.CreateGame(ctx, game)
		if !errors.Is(err, store.ErrCodeConflict) {
			break
		}
		logger.Warn("Game code collided at insert, regenerating", "code", code)
	}
	if err != nil {
		logger.Error("Failed to create game", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	created, err := st.FindGameByID(ctx, game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*created))
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games, optionally filtered by course, published state and title.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        q         query  string  false  "Search query for game title"
// @Param        course_id query  int     false  "Filter by course"
// @Param        published query  bool    false  "Filter by published state"
// @Param        page      query  int     false  "Page number" default(1)
// @Param        limit     query  int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/games [get]
func GetGames(c *gin.Context) {
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

	filter := store.GameFilter{
		Query:  c.Query("q"),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if raw := c.Query("course_id"); raw != "" {
		if id, parseErr := strconv.ParseUint(raw, 10, 32); parseErr == nil {
			courseID := uint(id)
			filter.CourseID = &courseID
		}
	}
	if raw := c.Query("published"); raw != "" {
		if published, parseErr := strconv.ParseBool(raw); parseErr == nil {
			filter.Published = &published
		}
	}

	games, total, err := store.New(database.DB).ListGames(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, total, page, limit))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves the full game document, including categories and words.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	game, err := store.New(database.DB).FindGameByID(c.Request.Context(), uint(id))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// TogglePublishGame godoc
// @Summary      Toggle the published flag
// @Description  Publishes an unpublished game and vice versa.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]bool "{"published": true}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id}/publish [post]
func TogglePublishGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	ctx := c.Request.Context()
	st := store.New(database.DB)

	game, err := st.FindGameByID(ctx, uint(id))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	published := !game.Published
	if err := st.SetPublished(ctx, game.ID, published); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": published})
}

// AssignGameCourse godoc
// @Summary      Reassign a game to a course
// @Description  Moves the game to the named course, creating the course if necessary.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int               true "Game ID"
// @Param        input body CourseAssignInput true "Course name"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id}/course [put]
func AssignGameCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input CourseAssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	st := store.New(database.DB)

	course, err := st.GetOrCreateCourse(ctx, input.Course, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve course"})
		return
	}

	err = st.AssignCourse(ctx, uint(id), &course.ID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	game, err := st.FindGameByID(ctx, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game with its categories, words and submissions.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	err = store.New(database.DB).DeleteGame(c.Request.Context(), uint(id))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Public Handlers ---

// GetGameByCode godoc
// @Summary      Get a game by its code
// @Description  Retrieves the playable game document for a shared game code.
// @Tags         games
// @Produce      json
// @Param        code path string true "Game Code"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/code/{code} [get]
func GetGameByCode(c *gin.Context) {
	game, err := store.New(database.DB).FindGameByCode(c.Request.Context(), c.Param("code"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found for this code"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// endregion
