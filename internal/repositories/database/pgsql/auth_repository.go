package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/travel_request_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_request_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_request_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	authUserEntity = "user"
	sessionEntity  = "session"
)

// PgxAuthRepository stores login identities and their sessions.
type PgxAuthRepository struct {
	BaseRepository
}

func newPgxAuthRepository(pool *pgxpool.Pool) *PgxAuthRepository {
	return &PgxAuthRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.AuthUserRepository = (*PgxAuthRepository)(nil)
	_ portsrepo.SessionRepository  = (*PgxAuthRepository)(nil)
)

func toDomainAuthUser(m models.AuthUser) *domain.AuthUser {
	return &domain.AuthUser{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxAuthRepository) findAuthUser(ctx context.Context, where string, arg any) (*domain.AuthUser, error) {
	rows, err := r.Pool.Query(ctx, `SELECT user_id, username, email, password_hash, created_at FROM auth_users WHERE `+where, arg)
	if err != nil {
		return nil, translateError(err, authUserEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AuthUser])
	if err != nil {
		return nil, translateError(err, authUserEntity)
	}
	return toDomainAuthUser(m), nil
}

func (r *PgxAuthRepository) FindAuthUserByID(ctx context.Context, userID string) (*domain.AuthUser, error) {
	return r.findAuthUser(ctx, "user_id = $1", userID)
}

func (r *PgxAuthRepository) FindAuthUserByUsername(ctx context.Context, username string) (*domain.AuthUser, error) {
	return r.findAuthUser(ctx, "LOWER(username) = $1", strings.ToLower(username))
}

func (r *PgxAuthRepository) FindAuthUserByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	return r.findAuthUser(ctx, "LOWER(email) = $1", strings.ToLower(email))
}

func (r *PgxAuthRepository) SaveAuthUser(ctx context.Context, user domain.AuthUser) error {
	query := `
		INSERT INTO auth_users (user_id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	return translateError(err, authUserEntity)
}

func (r *PgxAuthRepository) SaveSession(ctx context.Context, session domain.AuthSession) error {
	query := `
		INSERT INTO auth_sessions (session_id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt)
	return translateError(err, sessionEntity)
}

func (r *PgxAuthRepository) FindSession(ctx context.Context, sessionID string) (*domain.AuthSession, error) {
	rows, err := r.Pool.Query(ctx, `SELECT session_id, user_id, created_at, expires_at FROM auth_sessions WHERE session_id = $1`, sessionID)
	if err != nil {
		return nil, translateError(err, sessionEntity)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AuthSession])
	if err != nil {
		return nil, translateError(err, sessionEntity)
	}
	return &domain.AuthSession{
		SessionID: m.SessionID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}, nil
}

// DeleteSession is idempotent.
func (r *PgxAuthRepository) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM auth_sessions WHERE session_id = $1`, sessionID)
	return translateError(err, sessionEntity)
}

func (r *PgxAuthRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM auth_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, translateError(err, sessionEntity)
	}
	return tag.RowsAffected(), nil
}
