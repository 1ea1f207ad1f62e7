package user

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

type User struct {
	ID             uint64    `db:"id"`
	Username       string    `db:"username"`
	HashedPassword string    `db:"password"`
	CreatedAt      time.Time `db:"created_at"`
}

type NotFoundError struct {
	Query string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("User [%s] is not found", e.Query)
}

type UsernameTakenError struct {
	Username string
}

func (e UsernameTakenError) Error() string {
	return fmt.Sprintf("Username [%s] is already taken", e.Username)
}

// Repository reads and writes users in the users database.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (r *Repository) EnsureSchema() error {
	_, err := r.db.Exec(schema)
	if err != nil {
		return errors.Wrap(err, "Unable to create users table")
	}
	return nil
}

func (r *Repository) Save(username string, hashedPassword string) (*User, error) {
	var u User
	err := r.db.Get(&u,
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, username, password, created_at",
		username, hashedPassword)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, UsernameTakenError{Username: username}
		}
		return nil, errors.Wrap(err, "Unable to insert user")
	}
	return &u, nil
}

func (r *Repository) GetByUsername(username string) (*User, error) {
	var u User
	err := r.db.Get(&u, "SELECT id, username, password, created_at FROM users WHERE username = $1", username)
	if err == sql.ErrNoRows {
		return nil, NotFoundError{Query: username}
	} else if err != nil {
		return nil, errors.Wrap(err, "sqlx Get returned an error")
	}
	return &u, nil
}

func (r *Repository) GetByID(id uint64) (*User, error) {
	var u User
	err := r.db.Get(&u, "SELECT id, username, password, created_at FROM users WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, NotFoundError{Query: fmt.Sprintf("%d", id)}
	} else if err != nil {
		return nil, errors.Wrap(err, "sqlx Get returned an error")
	}
	return &u, nil
}
