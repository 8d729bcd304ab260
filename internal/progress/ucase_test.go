package progress

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/evanfuller/learntrack/internal/catalog"
)

type fakeProgressRepository struct {
	records    map[string]*CompletionRecordModel
	failReads  bool
	failWrites bool
}

func newFakeProgressRepository() *fakeProgressRepository {
	return &fakeProgressRepository{
		records: make(map[string]*CompletionRecordModel),
	}
}

func recordKey(userID, courseID, lessonID string) string {
	return fmt.Sprintf("%s/%s/%s", userID, courseID, lessonID)
}

func (f *fakeProgressRepository) GetCourseRecords(ctx context.Context, userID, courseID string) ([]*CompletionRecordModel, error) {
	if f.failReads {
		return nil, errors.New("store offline")
	}
	var result []*CompletionRecordModel
	for _, record := range f.records {
		if record.UserID == userID && record.CourseID == courseID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeProgressRepository) UpsertRecord(ctx context.Context, record *CompletionRecordModel) error {
	if f.failWrites {
		return errors.New("store offline")
	}
	f.records[recordKey(record.UserID, record.CourseID, record.LessonID)] = record
	return nil
}

func (f *fakeProgressRepository) UpsertRecords(ctx context.Context, records []*CompletionRecordModel) error {
	if f.failWrites {
		return errors.New("store offline")
	}
	for _, record := range records {
		f.records[recordKey(record.UserID, record.CourseID, record.LessonID)] = record
	}
	return nil
}

func testCatalog() catalog.Store {
	return catalog.NewInMemoryStore([]*catalog.CourseModel{
		{
			ID:            "c1",
			Title:         "Intro to Testing",
			Instructor:    "Jo March",
			TotalDuration: "2h 30m",
			Lessons: []*catalog.LessonModel{
				{ID: "l1", Title: "Setup", Duration: "20m"},
				{ID: "l2", Title: "Fakes", Duration: "35m"},
				{ID: "l3", Title: "Tables", Duration: "30m"},
				{ID: "l4", Title: "Fixtures", Duration: "35m"},
				{ID: "l5", Title: "Coverage", Duration: "30m"},
			},
		},
		{
			ID:    "c2",
			Title: "Empty Course",
		},
	})
}

func TestLoadProgressUnknownCourse(t *testing.T) {
	uc := NewProgressUseCase(testCatalog(), newFakeProgressRepository())

	view, err := uc.LoadProgress(context.Background(), "u1", "nope")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if view != nil {
		t.Fatalf("expected nil view for unknown course, got %+v", view)
	}
}

func TestLoadProgressNoRecords(t *testing.T) {
	uc := NewProgressUseCase(testCatalog(), newFakeProgressRepository())

	view, err := uc.LoadProgress(context.Background(), "u1", "c1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(view.Lessons) != 5 {
		t.Fatalf("expected 5 lessons, got %d", len(view.Lessons))
	}
	for _, lesson := range view.Lessons {
		if lesson.Completed {
			t.Fatalf("lesson %s should start incomplete", lesson.ID)
		}
	}
	summary := view.Summary()
	if summary.Percentage != 0 || summary.IsComplete {
		t.Fatalf("expected 0%% incomplete summary, got %+v", summary)
	}
}

func TestLoadProgressMergesRecords(t *testing.T) {
	repo := newFakeProgressRepository()
	repo.UpsertRecord(context.Background(), &CompletionRecordModel{
		UserID: "u1", CourseID: "c1", LessonID: "l2", Completed: true,
	})
	// records of other users must not leak in
	repo.UpsertRecord(context.Background(), &CompletionRecordModel{
		UserID: "u2", CourseID: "c1", LessonID: "l3", Completed: true,
	})
	uc := NewProgressUseCase(testCatalog(), repo)

	view, err := uc.LoadProgress(context.Background(), "u1", "c1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	wantIDs := []string{"l1", "l2", "l3", "l4", "l5"}
	for i, lesson := range view.Lessons {
		if lesson.ID != wantIDs[i] {
			t.Fatalf("lesson order broken at %d: got %s, want %s", i, lesson.ID, wantIDs[i])
		}
	}
	for _, lesson := range view.Lessons {
		if lesson.Completed != (lesson.ID == "l2") {
			t.Fatalf("lesson %s completed=%v", lesson.ID, lesson.Completed)
		}
	}
	summary := view.Summary()
	if summary.CompletedCount != 1 || summary.Percentage != 20 {
		t.Fatalf("expected 1/5 = 20%%, got %+v", summary)
	}
}

func TestLoadProgressIgnoresStaleRecords(t *testing.T) {
	repo := newFakeProgressRepository()
	repo.UpsertRecord(context.Background(), &CompletionRecordModel{
		UserID: "u1", CourseID: "c1", LessonID: "removed", Completed: true,
	})
	uc := NewProgressUseCase(testCatalog(), repo)

	view, err := uc.LoadProgress(context.Background(), "u1", "c1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(view.Lessons) != 5 {
		t.Fatalf("stale record must not add lessons, got %d", len(view.Lessons))
	}
	if view.Summary().CompletedCount != 0 {
		t.Fatalf("stale record must not count towards completion")
	}
}

func TestLoadProgressReadFailureFallsBack(t *testing.T) {
	repo := newFakeProgressRepository()
	repo.failReads = true
	uc := NewProgressUseCase(testCatalog(), repo)

	view, err := uc.LoadProgress(context.Background(), "u1", "c1")
	if !errors.Is(err, ErrProgressUnavailable) {
		t.Fatalf("expected ErrProgressUnavailable, got %v", err)
	}
	if view == nil {
		t.Fatal("course must stay browsable on a read failure")
	}
	if len(view.Lessons) != 5 {
		t.Fatalf("fallback view must keep the catalog lessons, got %d", len(view.Lessons))
	}
	for _, lesson := range view.Lessons {
		if lesson.Completed {
			t.Fatalf("fallback view must be all-incomplete, lesson %s is completed", lesson.ID)
		}
	}
}

func TestToggleLessonCompletes(t *testing.T) {
	repo := newFakeProgressRepository()
	uc := NewProgressUseCase(testCatalog(), repo)
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")

	next, err := uc.ToggleLesson(context.Background(), "u1", view, "l1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !next.Lessons[0].Completed {
		t.Fatal("l1 should be completed after toggle")
	}
	if view.Lessons[0].Completed {
		t.Fatal("input view must not be mutated")
	}
	if next.Summary().Percentage != 20 {
		t.Fatalf("expected 20%% after one toggle, got %+v", next.Summary())
	}

	record := repo.records[recordKey("u1", "c1", "l1")]
	if record == nil || !record.Completed {
		t.Fatalf("completed record not persisted: %+v", record)
	}
	if record.CompletedAt == nil {
		t.Fatal("CompletedAt should be set on completion")
	}

	// a fresh load must observe the persisted toggle
	fresh, err := uc.LoadProgress(context.Background(), "u1", "c1")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !fresh.Lessons[0].Completed || fresh.Summary().Percentage != 20 {
		t.Fatalf("reload did not reflect the toggle: %+v", fresh.Summary())
	}
}

func TestToggleLessonRoundTrip(t *testing.T) {
	repo := newFakeProgressRepository()
	uc := NewProgressUseCase(testCatalog(), repo)
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")

	once, err := uc.ToggleLesson(context.Background(), "u1", view, "l2")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	twice, err := uc.ToggleLesson(context.Background(), "u1", once, "l2")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.Lessons[1].Completed {
		t.Fatal("l2 should be incomplete after a round trip")
	}
	if !reflect.DeepEqual(twice, view) {
		t.Fatal("double toggle should restore the original view")
	}

	record := repo.records[recordKey("u1", "c1", "l2")]
	if record == nil || record.Completed {
		t.Fatalf("record should be replaced with completed=false: %+v", record)
	}
	if record.CompletedAt != nil {
		t.Fatal("CompletedAt should be cleared when un-completing")
	}
}

func TestToggleLessonInvalid(t *testing.T) {
	uc := NewProgressUseCase(testCatalog(), newFakeProgressRepository())
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")

	next, err := uc.ToggleLesson(context.Background(), "u1", view, "l99")
	if !errors.Is(err, ErrInvalidLesson) {
		t.Fatalf("expected ErrInvalidLesson, got %v", err)
	}
	if !reflect.DeepEqual(next, view) {
		t.Fatal("view must be unchanged on an invalid lesson")
	}
}

func TestToggleLessonWriteFailureReverts(t *testing.T) {
	repo := newFakeProgressRepository()
	uc := NewProgressUseCase(testCatalog(), repo)
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")
	snapshot := view.Clone()

	repo.failWrites = true
	next, err := uc.ToggleLesson(context.Background(), "u1", view, "l1")
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}
	if !reflect.DeepEqual(next, snapshot) {
		t.Fatal("failed toggle must return the pre-toggle snapshot")
	}
	if len(repo.records) != 0 {
		t.Fatal("failed write must not persist a record")
	}
}

func TestMarkCourseComplete(t *testing.T) {
	repo := newFakeProgressRepository()
	uc := NewProgressUseCase(testCatalog(), repo)
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")

	next, err := uc.MarkCourseComplete(context.Background(), "u1", view)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	summary := next.Summary()
	if !summary.IsComplete || summary.Percentage != 100 {
		t.Fatalf("expected a 100%% complete summary, got %+v", summary)
	}
	if len(repo.records) != 5 {
		t.Fatalf("expected 5 persisted records, got %d", len(repo.records))
	}
	first := repo.records[recordKey("u1", "c1", "l1")]
	for _, lesson := range view.Lessons {
		record := repo.records[recordKey("u1", "c1", lesson.ID)]
		if record == nil || !record.Completed || record.CompletedAt == nil {
			t.Fatalf("lesson %s not marked complete: %+v", lesson.ID, record)
		}
		if !record.CompletedAt.Equal(*first.CompletedAt) {
			t.Fatal("bulk completion should share one timestamp")
		}
	}
	if view.Summary().CompletedCount != 0 {
		t.Fatal("input view must not be mutated")
	}
}

func TestMarkCourseCompleteWriteFailureKeepsView(t *testing.T) {
	repo := newFakeProgressRepository()
	repo.failWrites = true
	uc := NewProgressUseCase(testCatalog(), repo)
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")

	next, err := uc.MarkCourseComplete(context.Background(), "u1", view)
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}
	if !next.Summary().IsComplete {
		t.Fatal("the optimistic all-complete view is kept on a failed bulk write")
	}
}

func TestSummaryEmptyCourse(t *testing.T) {
	uc := NewProgressUseCase(testCatalog(), newFakeProgressRepository())
	view, err := uc.LoadProgress(context.Background(), "u1", "c2")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	summary := view.Summary()
	if summary.TotalCount != 0 || summary.Percentage != 0 {
		t.Fatalf("expected an empty summary, got %+v", summary)
	}
	if summary.IsComplete {
		t.Fatal("an empty course is never reported complete")
	}
}

func TestCloneIsolation(t *testing.T) {
	uc := NewProgressUseCase(testCatalog(), newFakeProgressRepository())
	view, _ := uc.LoadProgress(context.Background(), "u1", "c1")

	cloned := view.Clone()
	cloned.Lessons[0].Completed = true
	if view.Lessons[0].Completed {
		t.Fatal("mutating a clone must not change the source")
	}
}
