package store

import (
	"context"
	"errors"
	"fmt"

	"connections/backend/internal/models"
)

var (
	// ErrNotFound means the referenced game or course does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoData means the game exists but has no submissions. Statistics over
	// an empty submission set are meaningless, not erroneous.
	ErrNoData = errors.New("no submissions recorded")

	// ErrCodeConflict means a generated game code lost the race against a
	// concurrent insert. Callers regenerate; the raw constraint violation is
	// never surfaced.
	ErrCodeConflict = errors.New("game code already taken")
)

// ValidationError reports a malformed ingestion payload. The write is aborted
// before any row is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GameFilter narrows ListGames. Nil pointer fields mean "any".
type GameFilter struct {
	CourseID  *uint
	Published *bool
	Query     string
	Offset    int
	Limit     int
}

// Store is the data-access surface the handlers, the code generator and the
// statistics aggregator depend on. The production implementation is GormStore;
// tests substitute in-memory fakes.
type Store interface {
	FindGameByCode(ctx context.Context, code string) (*models.Game, error)
	FindGameByID(ctx context.Context, id uint) (*models.Game, error)
	CodeExists(ctx context.Context, code string) (bool, error)

	// CreateGame persists a game with its nested categories and words in a
	// single transaction; a partial failure leaves nothing behind. A game
	// without a course is attached to the lazily-created unassigned course.
	CreateGame(ctx context.Context, game *models.Game) error
	DeleteGame(ctx context.Context, id uint) error
	SetPublished(ctx context.Context, id uint, published bool) error
	AssignCourse(ctx context.Context, gameID uint, courseID *uint) error
	ListGames(ctx context.Context, f GameFilter) ([]models.Game, int64, error)

	GetOrCreateCourse(ctx context.Context, name, description string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id uint, name, description string) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uint) error

	CreateSubmission(ctx context.Context, sub *models.Submission) error
	ListSubmissions(ctx context.Context, gameID uint) ([]models.Submission, error)

	// ListCorrectGroups returns, in difficulty order, the sorted word set of
	// each category of the game.
	ListCorrectGroups(ctx context.Context, gameID uint) ([][]string, error)
	CountSubmissions(ctx context.Context, gameID uint) (total, wins int64, err error)
}
