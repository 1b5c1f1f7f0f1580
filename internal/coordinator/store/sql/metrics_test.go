package sql

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/revault/coordinatord/internal/coordinator/store"
)

func TestObserve(t *testing.T) {
	// given
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sut := &Store{now: func() time.Time { return now }}

	// when
	sut.observe("test_observe", now, nil)
	sut.observe("test_observe", now, errors.Join(store.ErrDuplicate, errors.New("constraint")))
	sut.observe("test_observe", now, store.ErrFailedToGetSignatures)
	sut.observe("test_observe", now, store.ErrFailedToGetSignatures)

	// then
	assert.InDelta(t, 1, testutil.ToFloat64(operations.WithLabelValues("test_observe", resultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(operations.WithLabelValues("test_observe", resultDuplicate)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(operations.WithLabelValues("test_observe", resultError)), 0)
}
