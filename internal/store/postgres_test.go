package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"ruchi/internal/domain/spots"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSpotListQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		q := buildSpotListQuery(spots.Filter{})

		assert.Equal(t, "SELECT COUNT(*) FROM spots", q.count)
		assert.Empty(t, q.countArgs)
		assert.NotContains(t, q.page, "WHERE")
		assert.NotContains(t, q.page, "LIMIT")
		assert.True(t, strings.HasSuffix(q.page, " ORDER BY created_at DESC, seq DESC"))
		assert.Empty(t, q.pageArgs)
	})

	t.Run("every criterion", func(t *testing.T) {
		q := buildSpotListQuery(spots.Filter{
			District:     "Kozhikode",
			FoodType:     spots.Seafood,
			Search:       "  50%_off\\ ",
			ApprovedOnly: true,
			Limit:        20,
			Offset:       40,
		})

		where := " WHERE is_approved AND district = $1 AND $2 = ANY(food_types) AND (name ILIKE $3 OR speciality ILIKE $3)"
		assert.Equal(t, "SELECT COUNT(*) FROM spots"+where, q.count)
		assert.Equal(t, []any{"Kozhikode", "Seafood", `%50\%\_off\\%`}, q.countArgs)

		assert.Contains(t, q.page, "FROM spots"+where+" ORDER BY")
		assert.True(t, strings.HasSuffix(q.page, " LIMIT $4 OFFSET $5"), q.page)
		assert.Equal(t, []any{"Kozhikode", "Seafood", `%50\%\_off\\%`, 20, 40}, q.pageArgs)
	})

	t.Run("paging without filters", func(t *testing.T) {
		q := buildSpotListQuery(spots.Filter{ApprovedOnly: true, Limit: 10})

		assert.Equal(t, "SELECT COUNT(*) FROM spots WHERE is_approved", q.count)
		assert.Empty(t, q.countArgs)
		assert.True(t, strings.HasSuffix(q.page, " LIMIT $1"), q.page)
		assert.Equal(t, []any{10}, q.pageArgs)
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		q := buildSpotListQuery(spots.Filter{Search: "   "})
		assert.Equal(t, "SELECT COUNT(*) FROM spots", q.count)
	})
}

func TestSpotColumns(t *testing.T) {
	plain := spotColumns("")
	assert.True(t, strings.HasPrefix(plain, "id, seq, name"))

	prefixed := spotColumns("s")
	assert.True(t, strings.HasPrefix(prefixed, "s.id, s.seq, s.name"))
	assert.Equal(t, strings.Count(plain, ","), strings.Count(prefixed, ","))
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, notFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, notFound(other))
}

type fakeTx struct {
	pgx.Tx
	committed, rolledBack bool
	commitDeadline        bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	_, f.commitDeadline = ctx.Deadline()
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeStarter struct{ tx *fakeTx }

func (f *fakeStarter) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}

func TestWithTx(t *testing.T) {
	t.Run("statements get the query timeout", func(t *testing.T) {
		starter := &fakeStarter{tx: &fakeTx{}}

		var deadline time.Time
		err := withTx(context.Background(), starter, func(ctx context.Context, tx pgx.Tx) error {
			deadline, _ = ctx.Deadline()
			return nil
		})
		require.NoError(t, err)

		assert.WithinDuration(t, time.Now().Add(QueryTimeoutDuration), deadline, time.Second)
		assert.True(t, starter.tx.committed)
		assert.True(t, starter.tx.commitDeadline)
		assert.False(t, starter.tx.rolledBack)
	})

	t.Run("failure rolls back", func(t *testing.T) {
		starter := &fakeStarter{tx: &fakeTx{}}
		boom := errors.New("boom")

		err := withTx(context.Background(), starter, func(context.Context, pgx.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, starter.tx.committed)
		assert.True(t, starter.tx.rolledBack)
	})
}
