package sql

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // nolint: revive // registers the pgx driver
	_ "github.com/lib/pq"              // nolint: revive // registers the postgres driver
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite" // nolint: revive // registers the sqlite driver

	"github.com/revault/coordinatord/dbconn"
	"github.com/revault/coordinatord/internal/coordinator/store"
	"github.com/revault/coordinatord/pkg/tracing"
)

// Store implements store.CoordinatorStore on PostgreSQL or SQLite. It keeps only the
// connection descriptor; every operation opens and closes its own session.
type Store struct {
	params            dbconn.DBConnectionParams
	logger            *slog.Logger
	now               func() time.Time
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithNow(nowFunc func() time.Time) func(*Store) {
	return func(s *Store) {
		s.now = nowFunc
	}
}

func WithTracer(attr ...attribute.KeyValue) func(s *Store) {
	return func(s *Store) {
		s.tracingEnabled = true
		if len(attr) > 0 {
			s.tracingAttributes = append(s.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			s.tracingAttributes = append(s.tracingAttributes, attribute.String("file", file))
		}
	}
}

func New(params dbconn.DBConnectionParams, logger *slog.Logger, opts ...func(*Store)) (*Store, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Join(store.ErrFailedToOpenDB, err)
	}

	s := &Store{
		params: params,
		logger: logger.With(slog.String("module", "coordinator-store"), slog.String("engine", params.Scheme())),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Store) Ping(ctx context.Context) (err error) {
	ctx, span := tracing.StartTracing(ctx, "Ping", s.tracingEnabled, s.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	sess, err := s.openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	return sess.conn.PingContext(ctx)
}

func (s *Store) isPostgres() bool {
	return s.params.IsPostgres()
}

var _ store.CoordinatorStore = (*Store)(nil)
