package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/evanfuller/learntrack/internal/catalog"
	"go.elastic.co/apm"
)

// ProgressUseCaseImpl ...
type ProgressUseCaseImpl struct {
	CatalogStore       catalog.Store
	ProgressRepository ProgressRepository
}

var _ ProgressUseCase = &ProgressUseCaseImpl{}

// NewProgressUseCase ...
func NewProgressUseCase(
	CatalogStore catalog.Store,
	ProgressRepository ProgressRepository,
) *ProgressUseCaseImpl {
	return &ProgressUseCaseImpl{CatalogStore, ProgressRepository}
}

// LoadProgress merge the catalog course with the user's completion records
func (pu *ProgressUseCaseImpl) LoadProgress(ctx context.Context, userID, courseID string) (*ResolvedCourseModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.LoadProgress", "service")
	defer apmSpan.End()

	course := pu.CatalogStore.FindCourse(courseID)
	if course == nil {
		return nil, nil
	}

	records, err := pu.ProgressRepository.GetCourseRecords(ctx, userID, courseID)
	if err != nil {
		// the course stays browsable without its overlay
		return resolveCourse(course, nil), ErrProgressUnavailable
	}
	return resolveCourse(course, records), nil
}

// ToggleLesson flip completion of a single lesson and persist it.
//
// The flipped state is applied to a copy of the caller's view before the
// store is consulted. Each call reverts to its own captured snapshot, so
// in-flight toggles on different lessons cannot clobber each other
func (pu *ProgressUseCaseImpl) ToggleLesson(ctx context.Context, userID string, course *ResolvedCourseModel, lessonID string) (*ResolvedCourseModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.ToggleLesson", "service")
	defer apmSpan.End()

	target := -1
	for i, lesson := range course.Lessons {
		if lesson.ID == lessonID {
			target = i
			break
		}
	}
	if target < 0 {
		return course, ErrInvalidLesson
	}

	next := course.Clone()
	lesson := next.Lessons[target]
	lesson.Completed = !lesson.Completed

	record := &CompletionRecordModel{
		UserID:    userID,
		CourseID:  course.ID,
		LessonID:  lessonID,
		Completed: lesson.Completed,
	}
	if lesson.Completed {
		now := time.Now()
		record.CompletedAt = &now
	}
	if err := pu.ProgressRepository.UpsertRecord(ctx, record); err != nil {
		// revert to the pre-toggle snapshot
		return course, fmt.Errorf("toggle lesson %s: %w", lessonID, ErrWriteFailed)
	}
	return next, nil
}

// MarkCourseComplete mark every lesson completed with one bulk upsert.
//
// The all-complete view is kept even when the write fails, only single
// toggles get rollback precision
func (pu *ProgressUseCaseImpl) MarkCourseComplete(ctx context.Context, userID string, course *ResolvedCourseModel) (*ResolvedCourseModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.MarkCourseComplete", "service")
	defer apmSpan.End()

	now := time.Now()
	next := course.Clone()
	records := make([]*CompletionRecordModel, len(next.Lessons))
	for i, lesson := range next.Lessons {
		lesson.Completed = true
		records[i] = &CompletionRecordModel{
			UserID:      userID,
			CourseID:    course.ID,
			LessonID:    lesson.ID,
			Completed:   true,
			CompletedAt: &now,
		}
	}
	if err := pu.ProgressRepository.UpsertRecords(ctx, records); err != nil {
		return next, fmt.Errorf("mark course %s complete: %w", course.ID, ErrWriteFailed)
	}
	return next, nil
}

func resolveCourse(course *catalog.CourseModel, records []*CompletionRecordModel) *ResolvedCourseModel {
	byLesson := make(map[string]*CompletionRecordModel, len(records))
	for _, record := range records {
		byLesson[record.LessonID] = record
	}

	lessons := make([]*ResolvedLessonModel, len(course.Lessons))
	for i, lesson := range course.Lessons {
		resolved := &ResolvedLessonModel{
			ID:       lesson.ID,
			Title:    lesson.Title,
			Duration: lesson.Duration,
		}
		if record, ok := byLesson[lesson.ID]; ok {
			resolved.Completed = record.Completed
		}
		lessons[i] = resolved
	}
	return &ResolvedCourseModel{
		ID:            course.ID,
		Title:         course.Title,
		Description:   course.Description,
		Thumbnail:     course.Thumbnail,
		Instructor:    course.Instructor,
		TotalDuration: course.TotalDuration,
		Lessons:       lessons,
	}
}
