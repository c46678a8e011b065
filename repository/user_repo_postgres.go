package repository

import (
	"context"
	"database/sql"
	"time"

	"authportal/models"

	"github.com/google/uuid"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Exec(`
		INSERT INTO users (id, name, email, username, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Name, user.Email, user.Username, user.Password, user.IsAdmin, user.CreatedAt)

	return err
}

func (r *PostgresUserRepo) GetUserByEmailOrUsername(email, username string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`
		SELECT id, name, email, username, password_hash, is_admin, created_at
		FROM users
		WHERE email=$1 OR username=$2
	`, email, username))
}

func (r *PostgresUserRepo) GetUserByUsername(username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loginMaxTime)
	defer cancel()

	return r.scanUser(r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, username, password_hash, is_admin, created_at
		FROM users
		WHERE username=$1
	`, username))
}

func (r *PostgresUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`
		SELECT id, name, email, username, password_hash, is_admin, created_at
		FROM users
		WHERE id=$1
	`, id))
}

func (r *PostgresUserRepo) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Username,
		&user.Password, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *PostgresUserRepo) GetProfileByID(id string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := r.DB.QueryRow(`
		SELECT name, email FROM users WHERE id=$1
	`, id).Scan(&profile.Name, &profile.Email)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}

func (r *PostgresUserRepo) GetAllProfiles() ([]models.Profile, error) {
	rows, err := r.DB.Query(`SELECT name, email FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.Name, &p.Email); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}
