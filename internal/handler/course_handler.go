package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"connections/backend/internal/database"
	"connections/backend/internal/store"
)

type CourseInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CourseResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// CreateCourse godoc
// @Summary      Create a course
// @Description  Creates a course, or returns the existing one when the name matches case-insensitively.
// @Tags         admin-courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CourseInput true "Course Info"
// @Success      201  {object}  CourseResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/courses [post]
func CreateCourse(c *gin.Context) {
	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := store.New(database.DB).GetOrCreateCourse(c.Request.Context(), input.Name, input.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, CourseResponse{
		ID:          course.ID,
		CreatedAt:   course.CreatedAt,
		Name:        course.Name,
		Description: course.Description,
	})
}

// GetCourses godoc
// @Summary      Get all courses
// @Description  Retrieves every course, alphabetically.
// @Tags         admin-courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   CourseResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/courses [get]
func GetCourses(c *gin.Context) {
	courses, err := store.New(database.DB).ListCourses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list courses"})
		return
	}

	response := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		response = append(response, CourseResponse{
			ID:          course.ID,
			CreatedAt:   course.CreatedAt,
			Name:        course.Name,
			Description: course.Description,
		})
	}
	c.JSON(http.StatusOK, response)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Description  Updates the name and description of an existing course.
// @Tags         admin-courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int         true  "Course ID"
// @Param        input body      CourseInput true  "New Course Info"
// @Success      200   {object}  CourseResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Course not found"
// @Router       /admin/courses/{id} [put]
func UpdateCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := store.New(database.DB).UpdateCourse(c.Request.Context(), uint(id), input.Name, input.Description)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}

	c.JSON(http.StatusOK, CourseResponse{
		ID:          course.ID,
		CreatedAt:   course.CreatedAt,
		Name:        course.Name,
		Description: course.Description,
	})
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Description  Deletes a course. Its games are detached, never deleted.
// @Tags         admin-courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  map[string]string "{"message": "Course deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Course not found"
// @Router       /admin/courses/{id} [delete]
func DeleteCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	err = store.New(database.DB).DeleteCourse(c.Request.Context(), uint(id))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
