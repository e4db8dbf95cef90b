package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coderrBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (username, first_name, last_name, email, password, is_staff, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.Username, user.FirstName, user.LastName, user.Email, user.Password, user.IsStaff,
	)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password, is_staff, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&user.Email, &user.Password, &user.IsStaff, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password, is_staff, created_at, updated_at
		FROM users
		WHERE username = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&user.Email, &user.Password, &user.IsStaff, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateUserNames(ctx context.Context, userID int, firstName, lastName *string) error {
	query := `
		UPDATE users
		SET first_name = COALESCE(?, first_name),
		    last_name = COALESCE(?, last_name),
		    updated_at = NOW()
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, firstName, lastName, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// COALESCE updates can be no-ops; only report missing users.
		var count int
		if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			return models.ErrUserNotFound
		}
	}
	return nil
}

func (r *UserRepository) SetSession(ctx context.Context, userID int, session models.Session) error {
	query := `
		UPDATE users
		SET refresh_token = ?, expires_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, session.RefreshToken, session.ExpiresAt, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("no rows updated")
	}
	return nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT u.id, COALESCE(p.type, ''), u.is_staff, u.refresh_token, u.expires_at
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.refresh_token = ?
	`
	var session models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.UserID, &session.Role, &session.IsStaff, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, errors.New("no session found for the token")
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) ClearSession(ctx context.Context, userID int) error {
	query := `UPDATE users SET refresh_token = '', expires_at = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, time.Now(), userID)
	return err
}
