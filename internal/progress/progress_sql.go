package progress

import (
	"context"

	"github.com/evanfuller/learntrack/internal/infrastructure/driver"
)

// SQLProgressRepository completion records persisted in the
// user_course_progress table, keyed by (user_id, course_id, lesson_id)
type SQLProgressRepository struct {
	Conn driver.ITransactionalDB
}

var _ ProgressRepository = &SQLProgressRepository{}

func NewSQLProgressRepository(Conn driver.ITransactionalDB) *SQLProgressRepository {
	return &SQLProgressRepository{
		Conn: Conn,
	}
}

// GetCourseRecords bulk read of every record for the user and course.
// An empty result means no progress yet, not an error
func (repo *SQLProgressRepository) GetCourseRecords(ctx context.Context, userID, courseID string) ([]*CompletionRecordModel, error) {
	conn := repo.Conn
	rows, err := conn.QueryContext(ctx, `
SELECT
    ucp.user_id, ucp.course_id, ucp.lesson_id, ucp.completed, ucp.completed_at
FROM
    user_course_progress ucp
WHERE
    ucp.user_id = $1 AND ucp.course_id = $2
	`, userID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*CompletionRecordModel
	for rows.Next() {
		item := new(CompletionRecordModel)
		err := rows.Scan(&item.UserID, &item.CourseID, &item.LessonID, &item.Completed, &item.CompletedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// UpsertRecord insert-or-replace on the full composite key
func (repo *SQLProgressRepository) UpsertRecord(ctx context.Context, record *CompletionRecordModel) error {
	return upsert(ctx, repo.Conn, record)
}

// UpsertRecords insert-or-replace a batch in one transaction
func (repo *SQLProgressRepository) UpsertRecords(ctx context.Context, records []*CompletionRecordModel) error {
	conn := repo.Conn
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := upsert(ctx, tx, record); err != nil {
			tx.Rollback(ctx)
			return err
		}
	}
	return tx.Commit(ctx)
}

func upsert(ctx context.Context, conn driver.ITransactionalDB, record *CompletionRecordModel) error {
	_, err := conn.ExecContext(ctx, `
INSERT INTO user_course_progress (user_id, course_id, lesson_id, completed, completed_at)
VALUES ($1, $2, $3, $4, $5)
ON DUPLICATE KEY UPDATE completed = VALUES(completed), completed_at = VALUES(completed_at)
	`, record.UserID, record.CourseID, record.LessonID, record.Completed, record.CompletedAt)
	return err
}
