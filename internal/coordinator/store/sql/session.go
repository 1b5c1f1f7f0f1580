package sql

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/revault/coordinatord/internal/coordinator/store"
)

// session is a single dedicated connection used for exactly one operation.
type session struct {
	id     string
	db     *sqlx.DB
	conn   *sqlx.Conn
	logger *slog.Logger

	closing   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// openSession connects to the backing store. Connection failures are returned to the
// caller; failures after that point are only reported by the session supervisor.
func (s *Store) openSession(ctx context.Context) (*session, error) {
	db, err := sql.Open(s.params.DriverName(), s.params.String())
	if err != nil {
		return nil, errors.Join(store.ErrFailedToOpenDB, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return newSession(ctx, sqlx.NewDb(db, s.params.DriverName()), s.logger)
}

// newSession takes ownership of db. It is closed together with the session, or right
// away if no connection can be established.
func newSession(ctx context.Context, db *sqlx.DB, logger *slog.Logger) (*session, error) {
	conn, err := db.Connx(ctx)
	if err != nil {
		_ = db.Close()
		return nil, errors.Join(store.ErrUnableToGetSQLConnection, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, errors.Join(store.ErrUnableToGetSQLConnection, err)
	}

	id := uuid.NewString()
	sess := &session{
		id:      id,
		db:      db,
		conn:    conn,
		logger:  logger.With(slog.String("session", id)),
		closing: make(chan struct{}),
	}

	sess.supervise(ctx)

	return sess, nil
}

// supervise owns the transport of the session until it is closed or the context of the
// operation that opened it is done. Errors are logged, never returned.
func (sess *session) supervise(ctx context.Context) {
	sess.wg.Add(1)
	go func() {
		defer sess.wg.Done()

		select {
		case <-sess.closing:
		case <-ctx.Done():
			sess.logger.Debug("Session abandoned", slog.String("reason", context.Cause(ctx).Error()))
		}

		if err := sess.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			sessionErrors.Inc()
			sess.logger.Error("Database connection error", slog.String("err", err.Error()))
		}

		if err := sess.db.Close(); err != nil {
			sessionErrors.Inc()
			sess.logger.Error("Failed to close database handle", slog.String("err", err.Error()))
		}
	}()
}

// Close releases the session and waits until its transport is torn down.
func (sess *session) Close() {
	sess.closeOnce.Do(func() {
		close(sess.closing)
	})
	sess.wg.Wait()
}
