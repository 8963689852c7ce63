package postgres

import (
	"context"
	"database/sql"

	"ecobrands/internal/model"
	"ecobrands/internal/repository"
)

// SuggestionPostgres is a PostgreSQL implementation of repository.SuggestionRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SuggestionPostgres struct {
	db *sql.DB
}

// NewSuggestionPostgres creates a new SuggestionPostgres repository.
func NewSuggestionPostgres(db *sql.DB) *SuggestionPostgres {
	return &SuggestionPostgres{db: db}
}

var _ repository.SuggestionRepository = (*SuggestionPostgres)(nil)

// Create inserts a new suggestion row and returns the stored record.
func (r *SuggestionPostgres) Create(ctx context.Context, s *model.Suggestion) (*model.Suggestion, error) {
	const q = `
		INSERT INTO brand_suggestions (id, brand_name, website, submitter_name, submitter_email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, brand_name, website, submitter_name, submitter_email, status, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.BrandName,
		s.Website,
		s.SubmitterName,
		s.SubmitterEmail,
		s.Status,
		s.CreatedAt,
	)
	var out model.Suggestion
	if err := scanSuggestion(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns suggestions newest first using LIMIT/OFFSET pagination and a total count.
func (r *SuggestionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Suggestion], error) {
	const qCount = `SELECT COUNT(*) FROM brand_suggestions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, brand_name, website, submitter_name, submitter_email, status, created_at
		FROM brand_suggestions
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Suggestion, 0)
	for rows.Next() {
		var s model.Suggestion
		if err := scanSuggestion(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Suggestion]{
		Items: items,
		Total: total,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSuggestion(sc scanner, s *model.Suggestion) error {
	return sc.Scan(
		&s.ID,
		&s.BrandName,
		&s.Website,
		&s.SubmitterName,
		&s.SubmitterEmail,
		&s.Status,
		&s.CreatedAt,
	)
}
