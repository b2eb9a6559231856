package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestNonceWriteRepository_Consume(t *testing.T) {
	now := models.Millis(1_700_000_000_000)

	tests := []struct {
		name    string
		result  sqlmockResult
		wantOK  bool
		wantErr bool
	}{
		{"deleted", sqlmockResult{rows: 1}, true, false},
		{"no match", sqlmockResult{rows: 0}, false, false},
		{"db error", sqlmockResult{err: errors.New("conn reset")}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth_nonces")).
				WithArgs("0xabc", "n1", now.Time())
			if tt.result.err != nil {
				exp.WillReturnError(tt.result.err)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.result.rows))
			}

			ok, err := NewNonceWriteRepository(db).Consume(context.Background(), "0xabc", "n1", now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

type sqlmockResult struct {
	rows int64
	err  error
}

func TestNonceReadRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM auth_nonces")).
		WithArgs("0xabc").
		WillReturnRows(sqlmock.NewRows([]string{"address", "nonce", "created_at", "expires_at"}))

	n, err := NewNonceReadRepository(db).Get(context.Background(), "0xabc")
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestProposalWriteRepository_GuardedUpdates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalWriteRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'ACTIVE' WHERE proposal_id = $1 AND status = 'UPCOMING'")).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Promote(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	at := models.Millis(1_700_000_000_000)
	p := models.Proposal{ID: "p1", Status: models.StatusPassed, TotalForRaw: "5", TotalAgainstRaw: "3", TokenPowerVotedRaw: "8", TotalVoters: 2, FinalizedAt: &at}
	mock.ExpectExec(regexp.QuoteMeta("AND status NOT IN ('CLOSED', 'PASSED', 'FAILED')")).
		WithArgs("p1", "PASSED", "5", "3", "8", 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err = repo.Finalize(ctx, p)
	require.NoError(t, err)
	assert.True(t, ok)

	tally := models.TallyResult{TotalForRaw: "5", TotalAgainstRaw: "11", TokenPowerVotedRaw: "16", TotalVoters: 3}
	mock.ExpectExec(regexp.QuoteMeta("SET total_for_raw = $2::numeric")).
		WithArgs("p1", "5", "11", "16", 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.UpdateTotals(ctx, "p1", tally)
	require.NoError(t, err)
	assert.False(t, ok, "terminal proposal keeps its totals")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalReadRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProposalReadRepository(db)
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cols := []string{
		"proposal_id", "title", "category", "description", "author_address",
		"created_at", "start_time", "end_time", "status",
		"snapshot_block", "snapshot_chain_id", "strategy", "choices",
		"total_for_raw", "total_against_raw", "token_power_voted_raw",
		"total_voters", "finalized_at",
		"proposal_cid", "proposal_cid_status", "results_cid", "results_cid_status",
		"signature", "message_hash", "message_timestamp", "signed_message", "snapshot_id",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM proposals WHERE proposal_id = $1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"p1", "Title", "Treasury", "Body", "0xabc",
			ts, ts, ts.Add(time.Hour), "ACTIVE",
			int64(12), int64(30), models.StrategyERC20AtBlock, []byte(`["For","Against"]`),
			"5000000000000000000", "0", "5000000000000000000",
			1, nil,
			"bafy", "pinned", nil, "",
			"0xsig", "0xhash", int64(1735689600), []byte(`{"title":"Title","choices":["For","Against"]}`), nil,
		))

	p, err := repo.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, models.StatusActive, p.Status)
	assert.Equal(t, []string{"For", "Against"}, p.Choices)
	assert.Equal(t, models.MillisFromTime(ts.Add(time.Hour)), p.EndTime)
	assert.Equal(t, "bafy", *p.ProposalCID)
	assert.Nil(t, p.ResultsCID)
	assert.Nil(t, p.FinalizedAt)
	assert.False(t, p.Imported())
	require.NotNil(t, p.SignedMessage)
	assert.Equal(t, "Title", p.SignedMessage.Title)

	mock.ExpectQuery(regexp.QuoteMeta("FROM proposals WHERE proposal_id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cols))
	p, err = repo.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestStringList(t *testing.T) {
	var l stringList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, stringList{"a", "b"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, stringList{}, l)

	require.NoError(t, l.Scan("null"))
	assert.Equal(t, stringList{}, l)

	assert.Error(t, l.Scan(42))

	v, err := stringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
