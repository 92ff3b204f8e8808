package repository

import (
	"context"

	"fyyur-trivia/internal/trivia/model"
	apperrors "fyyur-trivia/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuestionRepository interface {
	// Search 不分大小寫子字串比對題目內文，category 非空字串時再加上分類過濾
	Search(ctx context.Context, term string, category string) ([]*model.Question, error)
	FindByID(ctx context.Context, id int) (*model.Question, error)
	Create(ctx context.Context, question *model.Question) (*model.Question, error)
	Delete(ctx context.Context, id int) error
	ListIDsExcluding(ctx context.Context, previous []int, category string) ([]int, error)
}

type QuestionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) QuestionRepository {
	return &QuestionRepositoryImpl{
		pool: pool,
	}
}

func (r *QuestionRepositoryImpl) Search(ctx context.Context, term string, category string) ([]*model.Question, error) {
	query := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
			AND ($2 = '' OR category = $2)
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, term, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]*model.Question, 0)
	for rows.Next() {
		var question model.Question
		err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Category,
			&question.Difficulty,
		)
		if err != nil {
			return nil, err
		}
		questions = append(questions, &question)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *QuestionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Question, error) {
	query := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = $1
	`

	var question model.Question
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}

	return &question, nil
}

func (r *QuestionRepositoryImpl) Create(ctx context.Context, question *model.Question) (*model.Question, error) {
	query := `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id, question, answer, category, difficulty
	`
	err := r.pool.QueryRow(ctx, query,
		question.Question, question.Answer, question.Category, question.Difficulty,
	).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		return nil, err
	}
	return question, nil
}

func (r *QuestionRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM questions
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}

// ListIDsExcluding 回傳不在 previous 裡的題目 id，quiz 抽題用
func (r *QuestionRepositoryImpl) ListIDsExcluding(ctx context.Context, previous []int, category string) ([]int, error) {
	if previous == nil {
		previous = []int{}
	}

	query := `
		SELECT id
		FROM questions
		WHERE id != ALL($1)
			AND ($2 = '' OR category = $2)
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, previous, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
