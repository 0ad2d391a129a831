package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/jmoiron/sqlx"
)

type sessionCtxKey struct{}

// WithSession returns a copy of ctx carrying s. Repositories called with the
// returned context run their statements on s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext returns the session stored by [WithSession].
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(Session)
	return s, ok && s != nil
}

// Acquire checks one connection out of the pool and applies the session
// options: standard-conforming string literals and the configured fixed
// time zone offset. The caller owns the session and must Release it.
func (db *DB) Acquire(ctx context.Context) (Session, error) {
	log := logger.FromContext(ctx)

	acquireCtx := ctx
	if db.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
		defer cancel()
	}

	conn, err := db.Connx(acquireCtx)
	if err != nil {
		log.Err(err).Str("func", "*DB.Acquire").Msg("error checking out connection")
		return nil, fmt.Errorf("%w: %w", ErrAcquiringSession, err)
	}

	for _, stmt := range db.sessionStatements() {
		if _, err = conn.ExecContext(acquireCtx, stmt); err != nil {
			log.Err(err).Str("func", "*DB.Acquire").Str("statement", stmt).Msg("error applying session option")
			_ = conn.Close()
			return nil, fmt.Errorf("%w: %w", ErrAcquiringSession, err)
		}
	}

	return &session{
		conn:               conn,
		bindType:           sqlx.BindType(db.DriverName()),
		errorClassificator: db.errorClassificator,
	}, nil
}

// sessionStatements lists the options applied to every checked out
// connection. The offset is validated by config before it gets here.
func (db *DB) sessionStatements() []string {
	return []string{
		setStandardConformingStrings,
		fmt.Sprintf(setTimeZoneFormat, db.timeZone),
	}
}

// session is the [Session] backed by a single pooled connection.
// A connection runs one statement at a time, so concurrent callers (the
// notify fan-out) queue on mu.
type session struct {
	conn               *sqlx.Conn
	bindType           int
	errorClassificator ErrorClassificator
	mu                 sync.Mutex
	once               sync.Once
}

func (s *session) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	q, args, err := s.bind(query, arg)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	res, err := s.conn.ExecContext(ctx, q, args...)
	s.mu.Unlock()
	if err != nil {
		return nil, s.errorClassificator.Classify(err)
	}
	return res, nil
}

func (s *session) NamedGetContext(ctx context.Context, dest any, query string, arg any) error {
	q, args, err := s.bind(query, arg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	err = s.conn.GetContext(ctx, dest, q, args...)
	s.mu.Unlock()
	if err != nil {
		return s.errorClassificator.Classify(err)
	}
	return nil
}

func (s *session) Release() error {
	var err error
	s.once.Do(func() {
		err = s.conn.Close()
	})
	return err
}

// bind compiles :name placeholders into the driver's positional form.
func (s *session) bind(query string, arg any) (string, []any, error) {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlx.Rebind(s.bindType, q), args, nil
}

// withSession runs fn on the session carried by ctx, or on a session
// acquired from src for the duration of the call.
func withSession(ctx context.Context, src SessionSource, fn func(Session) error) error {
	if s, ok := SessionFromContext(ctx); ok {
		return fn(s)
	}

	s, err := src.Acquire(ctx)
	if err != nil {
		return err
	}
	defer s.Release()

	return fn(s)
}
