package http

import (
	"errors"
	"net/http"

	"github.com/evanfuller/learntrack/internal/catalog"
	infra "github.com/evanfuller/learntrack/internal/infrastructure"
	"github.com/evanfuller/learntrack/internal/infrastructure/auth"
	"github.com/evanfuller/learntrack/internal/progress"
	"github.com/labstack/echo/v4"
)

// CourseHandler course browsing and lesson completion operations
type CourseHandler struct {
	catalogStore    catalog.Store
	progressUseCase progress.ProgressUseCase
	jwtUtil         *auth.JWTUtil
}

func NewCourseHandler(CatalogStore catalog.Store, ProgressUseCase progress.ProgressUseCase, JWTUtil *auth.JWTUtil) *CourseHandler {
	handler := &CourseHandler{CatalogStore, ProgressUseCase, JWTUtil}
	return handler
}

// courseProgressResponse resolved course plus its derived aggregate.
//
// warning carries the non-fatal degradation notice when the progress
// overlay could not be loaded
type courseProgressResponse struct {
	Course  *progress.ResolvedCourseModel `json:"course"`
	Summary *progress.SummaryModel        `json:"summary"`
	Warning string                        `json:"warning,omitempty"`
}

func newCourseProgressResponse(course *progress.ResolvedCourseModel, warning string) *courseProgressResponse {
	return &courseProgressResponse{
		Course:  course,
		Summary: course.Summary(),
		Warning: warning,
	}
}

// HandleListCourses list the course catalog
func (ch *CourseHandler) HandleListCourses(c echo.Context) error {
	return c.JSON(http.StatusOK, ch.catalogStore.ListCourses())
}

// HandleGetCourseProgress resolved course for the signed-in user
func (ch *CourseHandler) HandleGetCourseProgress(c echo.Context) error {
	claims := ch.jwtUtil.GetContextToken(c)
	courseID := c.Param("course_id")

	view, err := ch.progressUseCase.LoadProgress(c.Request().Context(), claims.UID, courseID)
	if view == nil {
		return c.JSON(http.StatusNotFound, infra.NewRESTStandardError(http.StatusNotFound, "Course not found"))
	}
	if errors.Is(err, progress.ErrProgressUnavailable) {
		// degraded but browsable
		return c.JSON(http.StatusOK, newCourseProgressResponse(view, err.Error()))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCourseProgressResponse(view, ""))
}

// HandleToggleLesson flip completion of one lesson
func (ch *CourseHandler) HandleToggleLesson(c echo.Context) error {
	claims := ch.jwtUtil.GetContextToken(c)
	courseID := c.Param("course_id")
	lessonID := c.Param("lesson_id")
	ctx := c.Request().Context()

	view, err := ch.progressUseCase.LoadProgress(ctx, claims.UID, courseID)
	if view == nil {
		return c.JSON(http.StatusNotFound, infra.NewRESTStandardError(http.StatusNotFound, "Course not found"))
	}
	if err != nil {
		// toggling on top of a fallback view would silently drop saved progress
		return c.JSON(http.StatusServiceUnavailable,
			infra.NewRESTStandardError(http.StatusServiceUnavailable, err.Error()))
	}

	next, err := ch.progressUseCase.ToggleLesson(ctx, claims.UID, view, lessonID)
	if errors.Is(err, progress.ErrInvalidLesson) {
		return c.JSON(http.StatusBadRequest, infra.NewRESTStandardError(http.StatusBadRequest, err.Error()))
	}
	if errors.Is(err, progress.ErrWriteFailed) {
		// next is the reverted pre-toggle snapshot
		return c.JSON(http.StatusBadGateway, newCourseProgressResponse(next, err.Error()))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCourseProgressResponse(next, ""))
}

// HandleCompleteCourse mark every lesson of the course completed
func (ch *CourseHandler) HandleCompleteCourse(c echo.Context) error {
	claims := ch.jwtUtil.GetContextToken(c)
	courseID := c.Param("course_id")
	ctx := c.Request().Context()

	view, err := ch.progressUseCase.LoadProgress(ctx, claims.UID, courseID)
	if view == nil {
		return c.JSON(http.StatusNotFound, infra.NewRESTStandardError(http.StatusNotFound, "Course not found"))
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable,
			infra.NewRESTStandardError(http.StatusServiceUnavailable, err.Error()))
	}

	next, err := ch.progressUseCase.MarkCourseComplete(ctx, claims.UID, view)
	if errors.Is(err, progress.ErrWriteFailed) {
		// the all-complete view is kept, the client only gets notified
		return c.JSON(http.StatusBadGateway, newCourseProgressResponse(next, err.Error()))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCourseProgressResponse(next, ""))
}
