package progress

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidLesson the referenced lesson does not belong to the course.
// Correct callers never trigger this, it marks a contract violation
var ErrInvalidLesson = errors.New("Lesson does not belong to the course")

// ErrProgressUnavailable the progress store could not be read. The course is
// still browsable with an all-incomplete overlay
var ErrProgressUnavailable = errors.New("Progress could not be loaded")

// ErrWriteFailed the progress store rejected a completion write
var ErrWriteFailed = errors.New("Failed to save lesson progress")

// CompletionRecordModel persisted completion state of one lesson for one user.
//
// The composite key (user_id, course_id, lesson_id) is unique, a missing
// record is equivalent to completed=false
type CompletionRecordModel struct {
	UserID      string     `json:"user_id"`
	CourseID    string     `json:"course_id"`
	LessonID    string     `json:"lesson_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ResolvedLessonModel catalog lesson annotated with per-user completion
type ResolvedLessonModel struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
}

// ResolvedCourseModel catalog course overlaid with the current user's
// completion records. Always carries the same lessons, in the same order,
// as its catalog definition
type ResolvedCourseModel struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Thumbnail     string                 `json:"thumbnail"`
	Instructor    string                 `json:"instructor"`
	TotalDuration string                 `json:"total_duration"`
	Lessons       []*ResolvedLessonModel `json:"lessons"`
}

// Clone deep copy, mutations on the copy never leak into the receiver
func (rc *ResolvedCourseModel) Clone() *ResolvedCourseModel {
	next := new(ResolvedCourseModel)
	*next = *rc
	next.Lessons = make([]*ResolvedLessonModel, len(rc.Lessons))
	for i, lesson := range rc.Lessons {
		copied := *lesson
		next.Lessons[i] = &copied
	}
	return next
}

// SummaryModel derived read-only completion aggregate
type SummaryModel struct {
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percentage     float64 `json:"percentage"`
	IsComplete     bool    `json:"is_complete"`
}

// Summary computes the completion aggregate.
//
// An empty course counts as 0%, never a division error, and is not
// reported as complete
func (rc *ResolvedCourseModel) Summary() *SummaryModel {
	completed := 0
	for _, lesson := range rc.Lessons {
		if lesson.Completed {
			completed++
		}
	}
	total := len(rc.Lessons)
	summary := &SummaryModel{
		CompletedCount: completed,
		TotalCount:     total,
	}
	if total > 0 {
		summary.Percentage = float64(completed) / float64(total) * 100
		summary.IsComplete = completed == total
	}
	return summary
}

// ProgressRepository persisted completion record access.
//
// Upserts replace on the full composite key and are idempotent, re-sending
// an identical record has no additional effect
type ProgressRepository interface {
	GetCourseRecords(ctx context.Context, userID, courseID string) ([]*CompletionRecordModel, error)
	UpsertRecord(ctx context.Context, record *CompletionRecordModel) error
	UpsertRecords(ctx context.Context, records []*CompletionRecordModel) error
}

// ProgressUseCase reconciles the immutable catalog with the per-user
// completion records and mediates all writes to the progress store
type ProgressUseCase interface {
	// LoadProgress returns the resolved course for the user, or nil if the
	// course is not in the catalog. On a store read failure the returned
	// view falls back to the bare catalog and err is ErrProgressUnavailable
	LoadProgress(ctx context.Context, userID, courseID string) (*ResolvedCourseModel, error)
	// ToggleLesson flips one lesson's completion, persisting the change.
	// On a store write failure the returned view is the caller's pre-toggle
	// snapshot and err wraps ErrWriteFailed
	ToggleLesson(ctx context.Context, userID string, course *ResolvedCourseModel, lessonID string) (*ResolvedCourseModel, error)
	// MarkCourseComplete marks every lesson completed with one bulk upsert.
	// The all-complete view is returned even when the write fails
	MarkCourseComplete(ctx context.Context, userID string, course *ResolvedCourseModel) (*ResolvedCourseModel, error)
}
