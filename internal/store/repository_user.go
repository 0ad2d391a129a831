package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	sessions SessionSource
	logger   *logger.Logger
}

// NewUserRepository constructs a [UserRepository] that runs its statements
// on the request session, or on a session acquired from sessions when the
// context carries none.
func NewUserRepository(sessions SessionSource, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		sessions: sessions,
		logger:   logger,
	}
}

// CreateUser inserts a new user and returns it with the generated id.
// The password must already be hashed.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - NOT NULL / CHECK / data exceptions → [ErrInvalidData].
//   - Anything else → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := withSession(ctx, r.sessions, func(s Session) error {
		return s.NamedGetContext(ctx, &user.UserID, createUser, user)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if errors.Is(err, ErrDuplicate) {
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered with email, including the
// stored password hash.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - Anything else → returned as classified by the session.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := withSession(ctx, r.sessions, func(s Session) error {
		return s.NamedGetContext(ctx, &foundUser, findUserByEmail, map[string]any{"email": email})
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
