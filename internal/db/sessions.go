package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Session is one authenticated gateway session. It carries the upstream
// access token plus the identity the assignment matcher needs. Sessions
// are revoked on logout and whenever the upstream rejects the token.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	UserKey     string     `json:"user_key"`
	UserEmail   string     `json:"user_email"`
	AccessToken string     `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
}

// CreateSession stores a new session and returns its id.
func (db *DB) CreateSession(ctx context.Context, userKey, userEmail, accessToken string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sessions (user_key, user_email, access_token)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userKey, userEmail, accessToken,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// GetSession retrieves an active session by id. Revoked or unknown
// sessions yield nil.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_key, user_email, access_token, created_at, revoked_at
		 FROM sessions WHERE id = $1 AND revoked_at IS NULL`,
		id,
	).Scan(&s.ID, &s.UserKey, &s.UserEmail, &s.AccessToken, &s.CreatedAt, &s.RevokedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// RevokeSession marks a session revoked. Revoking an already revoked or
// unknown session is not an error.
func (db *DB) RevokeSession(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// PurgeSessions deletes sessions older than the retention window and
// returns how many were removed.
func (db *DB) PurgeSessions(ctx context.Context, olderThan time.Duration) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM sessions WHERE created_at < NOW() - $1::interval`,
		fmt.Sprintf("%d seconds", int(olderThan.Seconds())),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
