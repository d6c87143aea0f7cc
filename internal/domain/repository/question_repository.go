package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"preptrack/internal/common"
	"preptrack/internal/domain/model"
)

// QuestionRepository is the persistence surface for a user's solved-question
// records. Grouped counts are pushed down to the store; date-boundary logic
// stays in the service layer where the reference clock lives.
type QuestionRepository interface {
	Create(ctx context.Context, q *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Question, error)
	Update(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id string) error

	CountByOwner(ctx context.Context, ownerID string) (int, error)
	GroupCount(ctx context.Context, ownerID, column string) ([]model.FieldCount, error)
	ListRecent(ctx context.Context, ownerID string, limit int) ([]model.Question, error)
	SolveDates(ctx context.Context, ownerID string) ([]time.Time, error)
}

// groupableColumns whitelists the columns GroupCount may interpolate.
var groupableColumns = map[string]bool{
	"topic":      true,
	"difficulty": true,
	"platform":   true,
}

type pgQuestionRepository struct {
	db *sql.DB
}

func NewPgQuestionRepository(db *sql.DB) QuestionRepository {
	return &pgQuestionRepository{db: db}
}

func (r *pgQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	query := `INSERT INTO questions (id, owner_id, title, topic, difficulty, platform, notes, solved_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.OwnerID, q.Title, q.Topic, q.Difficulty, q.Platform, q.Notes, q.SolvedDate, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	query := `SELECT id, owner_id, title, topic, difficulty, platform, notes, solved_date, created_at, updated_at
	          FROM questions WHERE id = $1`
	q := &model.Question{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.OwnerID, &q.Title, &q.Topic, &q.Difficulty, &q.Platform,
		&q.Notes, &q.SolvedDate, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgQuestionRepository.FindByID: %w", err)
	}
	return q, nil
}

func (r *pgQuestionRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Question, error) {
	query := `SELECT id, owner_id, title, topic, difficulty, platform, notes, solved_date, created_at, updated_at
	          FROM questions WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.queryQuestions(ctx, query, ownerID)
}

// Update replaces every caller-editable field. A zero-row update means the
// record was deleted after the ownership check, reported as not found.
func (r *pgQuestionRepository) Update(ctx context.Context, q *model.Question) error {
	query := `UPDATE questions SET
	            title = $1, topic = $2, difficulty = $3, platform = $4,
	            notes = $5, solved_date = $6, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		q.Title, q.Topic, q.Difficulty, q.Platform, q.Notes, q.SolvedDate, q.ID)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Update rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgQuestionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgQuestionRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgQuestionRepository.CountByOwner: %w", err)
	}
	return count, nil
}

func (r *pgQuestionRepository) GroupCount(ctx context.Context, ownerID, column string) ([]model.FieldCount, error) {
	if !groupableColumns[column] {
		return nil, fmt.Errorf("pgQuestionRepository.GroupCount: column %q not groupable", column)
	}
	query := fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM questions WHERE owner_id = $1 GROUP BY %s ORDER BY COUNT(*) DESC`,
		column, column)
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.GroupCount query: %w", err)
	}
	defer rows.Close()

	counts := []model.FieldCount{}
	for rows.Next() {
		var fc model.FieldCount
		if err := rows.Scan(&fc.Key, &fc.Count); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.GroupCount scan: %w", err)
		}
		counts = append(counts, fc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.GroupCount rows.Err: %w", err)
	}
	return counts, nil
}

func (r *pgQuestionRepository) ListRecent(ctx context.Context, ownerID string, limit int) ([]model.Question, error) {
	query := `SELECT id, owner_id, title, topic, difficulty, platform, notes, solved_date, created_at, updated_at
	          FROM questions WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.queryQuestions(ctx, query, ownerID, limit)
}

// SolveDates returns every record's solve timestamp, most recent first.
// Day truncation and same-day collapsing happen in the service layer.
func (r *pgQuestionRepository) SolveDates(ctx context.Context, ownerID string) ([]time.Time, error) {
	query := `SELECT solved_date FROM questions WHERE owner_id = $1 ORDER BY solved_date DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.SolveDates query: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.SolveDates scan: %w", err)
		}
		dates = append(dates, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.SolveDates rows.Err: %w", err)
	}
	return dates, nil
}

func (r *pgQuestionRepository) queryQuestions(ctx context.Context, query string, args ...interface{}) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository query: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.OwnerID, &q.Title, &q.Topic, &q.Difficulty, &q.Platform,
			&q.Notes, &q.SolvedDate, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository scan: %w", err)
		}
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository rows.Err: %w", err)
	}
	return questions, nil
}
