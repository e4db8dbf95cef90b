package repositories

import (
	"context"
	"database/sql"

	"coderrBack/internal/models"
)

type ProfileRepository struct {
	DB *sql.DB
}

const profileSelect = `
	SELECT p.user_id, u.username, u.first_name, u.last_name,
	       p.file, p.location, p.tel, p.description, p.working_hours,
	       COALESCE(p.type, ''), p.email, p.created_at
	FROM profiles p
	JOIN users u ON p.user_id = u.id
`

func scanProfile(row *sql.Row) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.UserID, &p.Username, &p.FirstName, &p.LastName,
		&p.File, &p.Location, &p.Tel, &p.Description, &p.WorkingHours,
		&p.Type, &p.Email, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Profile{}, models.ErrProfileNotFound
	}
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, userID int, profileType, email string) error {
	query := `
		INSERT INTO profiles (user_id, type, email, created_at)
		VALUES (?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query, userID, profileType, email)
	return err
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID int) (models.Profile, error) {
	return scanProfile(r.DB.QueryRowContext(ctx, profileSelect+` WHERE p.user_id = ?`, userID))
}

func (r *ProfileRepository) GetProfileByUserIDAndType(ctx context.Context, userID int, profileType string) (models.Profile, error) {
	return scanProfile(r.DB.QueryRowContext(ctx, profileSelect+` WHERE p.user_id = ? AND p.type = ?`, userID, profileType))
}

func (r *ProfileRepository) GetProfilesByType(ctx context.Context, profileType string) ([]models.Profile, error) {
	rows, err := r.DB.QueryContext(ctx, profileSelect+` WHERE p.type = ? ORDER BY p.created_at DESC`, profileType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		err := rows.Scan(
			&p.UserID, &p.Username, &p.FirstName, &p.LastName,
			&p.File, &p.Location, &p.Tel, &p.Description, &p.WorkingHours,
			&p.Type, &p.Email, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) error {
	query := `
		UPDATE profiles
		SET location = COALESCE(?, location),
		    tel = COALESCE(?, tel),
		    description = COALESCE(?, description),
		    working_hours = COALESCE(?, working_hours),
		    email = COALESCE(?, email)
		WHERE user_id = ?
	`
	result, err := r.DB.ExecContext(ctx, query,
		req.Location, req.Tel, req.Description, req.WorkingHours, req.Email, userID,
	)
	if err != nil {
		return err
	}
	if _, err := result.RowsAffected(); err != nil {
		return err
	}
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return models.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) SetProfileFile(ctx context.Context, userID int, path string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE profiles SET file = ? WHERE user_id = ?`, path, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) ProfileExists(ctx context.Context, userID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetProfileType returns the profile type for a user, or ErrProfileNotFound.
func (r *ProfileRepository) GetProfileType(ctx context.Context, userID int) (string, error) {
	var profileType sql.NullString
	err := r.DB.QueryRowContext(ctx, `SELECT type FROM profiles WHERE user_id = ?`, userID).Scan(&profileType)
	if err == sql.ErrNoRows {
		return "", models.ErrProfileNotFound
	}
	if err != nil {
		return "", err
	}
	return profileType.String, nil
}
