package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Repository is a database-backed repository for user accounts.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Register creates a new account. The email is stored lowercased so
// sign-in is case-insensitive on the address.
func (r *Repository) Register(ctx context.Context, reg Registration) (*User, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(reg.Email))

	var existing string
	err := r.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = ?", email).Scan(&existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		ID:            uuid.NewString(),
		FirstName:     reg.FirstName,
		LastName:      reg.LastName,
		Email:         email,
		Height:        reg.Height,
		Weight:        reg.Weight,
		Age:           reg.Age,
		ActivityLevel: reg.ActivityLevel,
		Goals:         reg.Goals,
		CreatedAt:     time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, firstname, lastname, email, password_hash, height, weight, age, activity_level, goals, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Email, string(hash),
		u.Height, u.Weight, u.Age, u.ActivityLevel, u.Goals, u.CreatedAt,
	)
	if err != nil {
		// The UNIQUE constraint can still fire under a concurrent insert.
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

// Login returns the account matching the email/password pair.
func (r *Repository) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var (
		u    User
		hash string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, firstname, lastname, email, password_hash, height, weight, age, activity_level, goals, created_at
		 FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &hash,
			&u.Height, &u.Weight, &u.Age, &u.ActivityLevel, &u.Goals, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
