package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"connections/backend/internal/models"
)

// GormStore implements Store on top of a gorm connection. It relies on the
// database's unique constraint on game_code as the source of truth for code
// uniqueness; see CreateGame.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindGameByCode(ctx context.Context, code string) (*models.Game, error) {
	return s.findGame(ctx, "game_code = ?", strings.ToUpper(code))
}

func (s *GormStore) FindGameByID(ctx context.Context, id uint) (*models.Game, error) {
	return s.findGame(ctx, "id = ?", id)
}

func (s *GormStore) findGame(ctx context.Context, cond string, arg interface{}) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Preload("Course").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("difficulty ASC")
		}).
		Preload("Categories.Words").
		Where(cond, arg).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GormStore) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("game_code = ?", strings.ToUpper(code)).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateGame(ctx context.Context, game *models.Game) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if game.CourseID == nil {
			course, err := getOrCreateCourse(tx, models.UnassignedCourseName, "Default course")
			if err != nil {
				return err
			}
			game.CourseID = &course.ID
			game.Course = course
		}
		if err := tx.Create(game).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCodeConflict
			}
			return err
		}
		return nil
	})
}

func (s *GormStore) DeleteGame(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(&models.Game{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SetPublished(ctx context.Context, id uint, published bool) error {
	return s.updateGameColumn(ctx, id, "published", published)
}

func (s *GormStore) AssignCourse(ctx context.Context, gameID uint, courseID *uint) error {
	return s.updateGameColumn(ctx, gameID, "course_id", courseID)
}

func (s *GormStore) updateGameColumn(ctx context.Context, id uint, column string, value interface{}) error {
	result := s.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListGames(ctx context.Context, f GameFilter) ([]models.Game, int64, error) {
	filtered := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&models.Game{})
		if f.CourseID != nil {
			q = q.Where("course_id = ?", *f.CourseID)
		}
		if f.Published != nil {
			q = q.Where("published = ?", *f.Published)
		}
		if f.Query != "" {
			q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var games []models.Game
	err := filtered().
		Preload("Course").
		Order("created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&games).Error
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

// getOrCreateCourse matches the course name case-insensitively; creation
// preserves the given casing.
func getOrCreateCourse(tx *gorm.DB, name, description string) (*models.Course, error) {
	var course models.Course
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&course).Error
	if err == nil {
		return &course, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	course = models.Course{Name: name, Description: description}
	if err := tx.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) GetOrCreateCourse(ctx context.Context, name, description string) (*models.Course, error) {
	return getOrCreateCourse(s.db.WithContext(ctx), name, description)
}

func (s *GormStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).Order("name ASC").Find(&courses).Error
	return courses, err
}

func (s *GormStore) UpdateCourse(ctx context.Context, id uint, name, description string) (*models.Course, error) {
	var course models.Course
	if err := s.db.WithContext(ctx).First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	course.Name = name
	course.Description = description
	if err := s.db.WithContext(ctx).Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) DeleteCourse(ctx context.Context, id uint) error {
	// Games keep existing; the FK is ON DELETE SET NULL and the next save of a
	// detached game re-attaches it to the unassigned course.
	result := s.db.WithContext(ctx).Unscoped().Delete(&models.Course{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *GormStore) ListSubmissions(ctx context.Context, gameID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id ASC").
		Find(&subs).Error
	return subs, err
}

func (s *GormStore) ListCorrectGroups(ctx context.Context, gameID uint) ([][]string, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Preload("Words").
		Where("game_id = ?", gameID).
		Order("difficulty ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	groups := make([][]string, 0, len(categories))
	for _, cat := range categories {
		words := make([]string, 0, len(cat.Words))
		for _, w := range cat.Words {
			words = append(words, w.Text)
		}
		sort.Strings(words)
		groups = append(groups, words)
	}
	return groups, nil
}

func (s *GormStore) CountSubmissions(ctx context.Context, gameID uint) (total, wins int64, err error) {
	base := s.db.WithContext(ctx).Model(&models.Submission{}).Where("game_id = ?", gameID)
	if err = base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = base.Session(&gorm.Session{}).Where("is_won = ?", true).Count(&wins).Error; err != nil {
		return 0, 0, err
	}
	return total, wins, nil
}
