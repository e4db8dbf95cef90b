package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"coderrBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// CreateReview inserts the review and relies on the unique index over
// (business_user_id, reviewer_id) to enforce the one-review-per-pair rule.
// An application-level pre-check would leave a race window between the check
// and the insert.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	query := `
		INSERT INTO reviews (business_user_id, reviewer_id, rating, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		rev.BusinessUserID, rev.ReviewerID, rev.Rating, rev.Description,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Review{}, models.ErrAlreadyReviewed
		}
		return models.Review{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	return r.GetReviewByID(ctx, int(id))
}

const reviewSelect = `
	SELECT id, business_user_id, reviewer_id, rating, description, created_at, updated_at
	FROM reviews
`

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	var rev models.Review
	err := r.DB.QueryRowContext(ctx, reviewSelect+` WHERE id = ?`, id).Scan(
		&rev.ID, &rev.BusinessUserID, &rev.ReviewerID, &rev.Rating,
		&rev.Description, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewsWithFilters(ctx context.Context, f models.ReviewFilterRequest) ([]models.Review, error) {
	var (
		conditions []string
		params     []interface{}
	)
	if f.BusinessUserID > 0 {
		conditions = append(conditions, "business_user_id = ?")
		params = append(params, f.BusinessUserID)
	}
	if f.ReviewerID > 0 {
		conditions = append(conditions, "reviewer_id = ?")
		params = append(params, f.ReviewerID)
	}

	query := reviewSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch f.Ordering {
	case models.ReviewOrderingUpdatedAt:
		query += ` ORDER BY updated_at ASC`
	case models.ReviewOrderingRating:
		query += ` ORDER BY rating ASC`
	case models.ReviewOrderingRatingDesc:
		query += ` ORDER BY rating DESC`
	default:
		query += ` ORDER BY updated_at DESC`
	}

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(
			&rev.ID, &rev.BusinessUserID, &rev.ReviewerID, &rev.Rating,
			&rev.Description, &rev.CreatedAt, &rev.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, id int, req models.ReviewUpdateRequest) (models.Review, error) {
	query := `
		UPDATE reviews
		SET rating = COALESCE(?, rating),
		    description = COALESCE(?, description),
		    updated_at = NOW()
		WHERE id = ?
	`
	if _, err := r.DB.ExecContext(ctx, query, req.Rating, req.Description, id); err != nil {
		return models.Review{}, err
	}
	return r.GetReviewByID(ctx, id)
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}
