package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"connections/backend/internal/database"
	"connections/backend/internal/handler"
	"connections/backend/internal/models"
	"connections/backend/internal/stats"
	"connections/backend/internal/store"
	"connections/backend/pkg/logger"
)

type HandlerSuite struct {
	suite.Suite
	router *gin.Engine
	store  *store.GormStore
}

func (s *HandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(db.Exec("PRAGMA foreign_keys = ON").Error)
	s.Require().NoError(database.Migrate(db))

	database.DB = db
	s.store = store.New(db)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/games/code/:code", handler.GetGameByCode)
	api.GET("/games/code/:code/stats/guess-distribution", handler.GetGuessDistribution)
	api.GET("/games/code/:code/stats/average-time", handler.GetAverageTimePerCategory)
	api.GET("/games/code/:code/stats/submissions", handler.GetSubmissionCount)
	api.POST("/submit", handler.CreateSubmission)
	// Admin handlers are registered without the auth chain; the middleware is
	// exercised separately and the handlers do not depend on it.
	api.POST("/admin/games", handler.CreateGame)
	api.GET("/admin/submissions", handler.GetSubmissions)
	s.router = router
}

func (s *HandlerSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) seedGame(code string) *models.Game {
	game := &models.Game{
		GameCode:         code,
		Title:            "Pets",
		Author:           "Unknown Author",
		NumCategories:    2,
		WordsPerCategory: 2,
		Categories: []models.Category{
			{Label: "Cats and dogs", Difficulty: 1, Explanation: "x", Words: []models.Word{{Text: "cat"}, {Text: "dog"}}},
			{Label: "Colors", Difficulty: 2, Explanation: "x", Words: []models.Word{{Text: "red"}, {Text: "blue"}}},
		},
	}
	s.Require().NoError(s.store.CreateGame(context.Background(), game))
	return game
}

func (s *HandlerSuite) TestUploadThenReadBack() {
	doc := handler.GameUpload{
		Title:            "Python basics",
		Author:           "ada",
		NumCategories:    2,
		WordsPerCategory: 2,
		Course:           "CS 101",
		Game: []handler.CategoryUpload{
			{Category: "Loops", Difficulty: 2, Words: []string{"for", "while"}},
			{Category: "Booleans", Difficulty: 1, Words: []string{"True", "False"}},
		},
	}

	rec := s.postJSON("/api/v1/admin/games", doc)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created handler.GameResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Assert().Len(created.GameCode, 4)
	s.Require().NotNil(created.Course)
	s.Assert().Equal("CS 101", created.Course.Name)

	rec = s.get("/api/v1/games/code/" + created.GameCode)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got handler.GameResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Assert().Equal("Python basics", got.Title)
	s.Require().Len(got.Game, 2)
	// Difficulty order, word order within a category not guaranteed.
	s.Assert().Equal("Booleans", got.Game[0].Category)
	s.Assert().ElementsMatch([]string{"True", "False"}, got.Game[0].Words)
	s.Assert().ElementsMatch([]string{"for", "while"}, got.Game[1].Words)
}

func (s *HandlerSuite) TestUpload_CountMismatchRejected() {
	doc := handler.GameUpload{
		Title:            "Broken",
		NumCategories:    3,
		WordsPerCategory: 2,
		Game: []handler.CategoryUpload{
			{Category: "Loops", Difficulty: 1, Words: []string{"for", "while"}},
		},
	}

	rec := s.postJSON("/api/v1/admin/games", doc)
	s.Assert().Equal(http.StatusBadRequest, rec.Code)

	// Nothing was persisted.
	var games int64
	s.Require().NoError(database.DB.Model(&models.Game{}).Count(&games).Error)
	s.Assert().Zero(games)
}

func (s *HandlerSuite) TestSubmitAndStats() {
	s.seedGame("BCDF")

	first := handler.SubmissionInput{
		GameCode:         "BCDF",
		SubmittedGuesses: [][]string{{"dog", "cat"}, {"red", "blue"}},
		TimeToGuess:      []float64{10.0, 30.0},
		IsGameWon:        true,
	}
	second := handler.SubmissionInput{
		GameCode:         "BCDF",
		SubmittedGuesses: [][]string{{"cat", "red"}, {"cat", "dog"}},
		TimeToGuess:      []float64{5.0, 20.0},
	}
	s.Require().Equal(http.StatusCreated, s.postJSON("/api/v1/submit", first).Code)
	s.Require().Equal(http.StatusCreated, s.postJSON("/api/v1/submit", second).Code)

	rec := s.get("/api/v1/games/code/BCDF/stats/guess-distribution")
	s.Require().Equal(http.StatusOK, rec.Code)
	var dist map[string]int
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &dist))
	s.Assert().Equal(2, dist[stats.GroupKey([]string{"cat", "dog"})])
	s.Assert().Equal(1, dist[stats.GroupKey([]string{"cat", "red"})])
	s.Assert().Equal(1, dist[stats.GroupKey([]string{"blue", "red"})])

	rec = s.get("/api/v1/games/code/BCDF/stats/average-time")
	s.Require().Equal(http.StatusOK, rec.Code)
	var averages map[string]stats.TimeStat
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &averages))
	s.Assert().Equal(stats.TimeStat{Average: 15.0, Count: 2}, averages[stats.GroupKey([]string{"cat", "dog"})])
	s.Assert().Equal(stats.TimeStat{Average: 30.0, Count: 1}, averages[stats.GroupKey([]string{"blue", "red"})])

	rec = s.get("/api/v1/games/code/BCDF/stats/submissions")
	s.Require().Equal(http.StatusOK, rec.Code)
	var counts stats.Counts
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &counts))
	s.Assert().Equal(stats.Counts{Total: 2, Wins: 1}, counts)
}

func (s *HandlerSuite) TestSubmit_LengthMismatchRejected() {
	s.seedGame("BCDF")

	input := handler.SubmissionInput{
		GameCode:         "BCDF",
		SubmittedGuesses: [][]string{{"cat", "dog"}},
		TimeToGuess:      []float64{1.0, 2.0},
	}
	rec := s.postJSON("/api/v1/submit", input)
	s.Assert().Equal(http.StatusBadRequest, rec.Code)

	var submissions int64
	s.Require().NoError(database.DB.Model(&models.Submission{}).Count(&submissions).Error)
	s.Assert().Zero(submissions)
}

func (s *HandlerSuite) TestSubmit_UnknownGame() {
	input := handler.SubmissionInput{
		GameCode:         "ZZZZ",
		SubmittedGuesses: [][]string{{"cat", "dog"}},
		TimeToGuess:      []float64{1.0},
	}
	s.Assert().Equal(http.StatusNotFound, s.postJSON("/api/v1/submit", input).Code)
}

func (s *HandlerSuite) TestListSubmissions() {
	s.seedGame("BCDF")
	other := s.seedGame("GHJK")

	for i := 0; i < 3; i++ {
		input := handler.SubmissionInput{
			GameCode:         "BCDF",
			SubmittedGuesses: [][]string{{"cat", "dog"}},
			TimeToGuess:      []float64{float64(i + 1)},
			IsGameWon:        i == 0,
		}
		s.Require().Equal(http.StatusCreated, s.postJSON("/api/v1/submit", input).Code)
	}
	s.Require().Equal(http.StatusCreated, s.postJSON("/api/v1/submit", handler.SubmissionInput{
		GameCode:         "GHJK",
		SubmittedGuesses: [][]string{{"red", "blue"}},
		TimeToGuess:      []float64{4.0},
	}).Code)

	rec := s.get("/api/v1/admin/submissions")
	s.Require().Equal(http.StatusOK, rec.Code)
	var listed handler.PaginatedSubmissionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Len(listed.Data, 4)
	s.Assert().Equal(int64(4), listed.Meta.TotalItems)
	// Newest first.
	s.Assert().Equal(other.ID, listed.Data[0].GameID)
	s.Assert().Equal([][]string{{"red", "blue"}}, listed.Data[0].Guesses)
	s.Assert().True(listed.Data[3].IsWon)

	// Filtered by game.
	rec = s.get("/api/v1/admin/submissions?game_id=" + strconv.FormatUint(uint64(other.ID), 10))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Len(listed.Data, 1)
	s.Assert().Equal(int64(1), listed.Meta.TotalItems)
	s.Assert().Equal([]float64{4.0}, listed.Data[0].TimeTaken)

	// Paginated.
	rec = s.get("/api/v1/admin/submissions?page=2&limit=3")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Len(listed.Data, 1)
	s.Assert().Equal(2, listed.Meta.CurrentPage)
	s.Assert().Equal(2, listed.Meta.TotalPages)
}

func (s *HandlerSuite) TestStats_NotFoundVsNoData() {
	s.seedGame("BCDF")

	// Unknown code: 404.
	s.Assert().Equal(http.StatusNotFound, s.get("/api/v1/games/code/ZZZZ/stats/guess-distribution").Code)
	s.Assert().Equal(http.StatusNotFound, s.get("/api/v1/games/code/ZZZZ/stats/average-time").Code)
	s.Assert().Equal(http.StatusNotFound, s.get("/api/v1/games/code/ZZZZ/stats/submissions").Code)

	// Known code, no submissions: reported distinctly.
	s.Assert().Equal(http.StatusBadRequest, s.get("/api/v1/games/code/BCDF/stats/guess-distribution").Code)
	s.Assert().Equal(http.StatusBadRequest, s.get("/api/v1/games/code/BCDF/stats/average-time").Code)

	// The count endpoint answers zero instead.
	rec := s.get("/api/v1/games/code/BCDF/stats/submissions")
	s.Require().Equal(http.StatusOK, rec.Code)
	var counts stats.Counts
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &counts))
	s.Assert().Equal(stats.Counts{}, counts)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}
