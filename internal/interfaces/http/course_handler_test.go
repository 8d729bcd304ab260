package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evanfuller/learntrack/internal/catalog"
	"github.com/evanfuller/learntrack/internal/infrastructure/auth"
	"github.com/evanfuller/learntrack/internal/progress"
	"github.com/labstack/echo/v4"
)

type fakeProgressUseCase struct {
	view      *progress.ResolvedCourseModel
	loadErr   error
	toggleErr error
	markErr   error
}

func (f *fakeProgressUseCase) LoadProgress(ctx context.Context, userID, courseID string) (*progress.ResolvedCourseModel, error) {
	return f.view, f.loadErr
}

func (f *fakeProgressUseCase) ToggleLesson(ctx context.Context, userID string, course *progress.ResolvedCourseModel, lessonID string) (*progress.ResolvedCourseModel, error) {
	if f.toggleErr != nil {
		return course, f.toggleErr
	}
	next := course.Clone()
	for _, lesson := range next.Lessons {
		if lesson.ID == lessonID {
			lesson.Completed = !lesson.Completed
		}
	}
	return next, nil
}

func (f *fakeProgressUseCase) MarkCourseComplete(ctx context.Context, userID string, course *progress.ResolvedCourseModel) (*progress.ResolvedCourseModel, error) {
	next := course.Clone()
	for _, lesson := range next.Lessons {
		lesson.Completed = true
	}
	return next, f.markErr
}

func testView() *progress.ResolvedCourseModel {
	return &progress.ResolvedCourseModel{
		ID:    "c1",
		Title: "Intro to Testing",
		Lessons: []*progress.ResolvedLessonModel{
			{ID: "l1", Title: "Setup", Duration: "20m"},
			{ID: "l2", Title: "Fakes", Duration: "35m"},
		},
	}
}

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder, *auth.JWTUtil) {
	t.Helper()
	app := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := app.NewContext(req, rec)

	ju := auth.NewJWTUtil("HS256", "secret", "token", time.Minute)
	ju.SetContextToken(c, &auth.AppTokenClaims{UID: "u1"})
	return c, rec, ju
}

func TestHandleListCourses(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodGet, "/api/v1/catalog/")
	store := catalog.NewInMemoryStore(catalog.DefaultCourses())
	handler := NewCourseHandler(store, &fakeProgressUseCase{}, ju)

	if err := handler.HandleListCourses(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var courses []*catalog.CourseModel
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(courses) != 6 {
		t.Fatalf("expected 6 courses, got %d", len(courses))
	}
}

func TestHandleGetCourseProgressNotFound(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodGet, "/")
	c.SetParamNames("course_id")
	c.SetParamValues("nope")
	handler := NewCourseHandler(catalog.NewInMemoryStore(nil), &fakeProgressUseCase{}, ju)

	if err := handler.HandleGetCourseProgress(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleGetCourseProgressDegraded(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodGet, "/")
	c.SetParamNames("course_id")
	c.SetParamValues("c1")
	uc := &fakeProgressUseCase{view: testView(), loadErr: progress.ErrProgressUnavailable}
	handler := NewCourseHandler(catalog.NewInMemoryStore(nil), uc, ju)

	if err := handler.HandleGetCourseProgress(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded load should still answer 200, got %d", rec.Code)
	}
	var body courseProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Warning == "" {
		t.Fatal("degraded response must carry a warning")
	}
	if body.Summary == nil || body.Summary.CompletedCount != 0 {
		t.Fatalf("expected an all-incomplete summary, got %+v", body.Summary)
	}
}

func TestHandleToggleLesson(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodPut, "/")
	c.SetParamNames("course_id", "lesson_id")
	c.SetParamValues("c1", "l1")
	uc := &fakeProgressUseCase{view: testView()}
	handler := NewCourseHandler(catalog.NewInMemoryStore(nil), uc, ju)

	if err := handler.HandleToggleLesson(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body courseProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Course.Lessons[0].Completed {
		t.Fatal("l1 should be completed in the response")
	}
	if body.Summary.CompletedCount != 1 {
		t.Fatalf("expected 1 completed lesson, got %+v", body.Summary)
	}
}

func TestHandleToggleLessonInvalid(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodPut, "/")
	c.SetParamNames("course_id", "lesson_id")
	c.SetParamValues("c1", "l99")
	uc := &fakeProgressUseCase{view: testView(), toggleErr: progress.ErrInvalidLesson}
	handler := NewCourseHandler(catalog.NewInMemoryStore(nil), uc, ju)

	if err := handler.HandleToggleLesson(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleToggleLessonWriteFailure(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodPut, "/")
	c.SetParamNames("course_id", "lesson_id")
	c.SetParamValues("c1", "l1")
	uc := &fakeProgressUseCase{view: testView(), toggleErr: progress.ErrWriteFailed}
	handler := NewCourseHandler(catalog.NewInMemoryStore(nil), uc, ju)

	if err := handler.HandleToggleLesson(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var body courseProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Warning == "" {
		t.Fatal("failed write must carry a warning")
	}
	if body.Course.Lessons[0].Completed {
		t.Fatal("response must carry the reverted view")
	}
}

func TestHandleCompleteCourse(t *testing.T) {
	c, rec, ju := newTestContext(t, http.MethodPut, "/")
	c.SetParamNames("course_id")
	c.SetParamValues("c1")
	uc := &fakeProgressUseCase{view: testView()}
	handler := NewCourseHandler(catalog.NewInMemoryStore(nil), uc, ju)

	if err := handler.HandleCompleteCourse(c); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body courseProgressResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Summary.IsComplete {
		t.Fatalf("expected a complete summary, got %+v", body.Summary)
	}
}
