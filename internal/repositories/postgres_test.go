package repositories

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	db.SetMaxOpenConns(20)

	require.NoError(t, ApplyMigrations(db))
	require.NoError(t, ApplyMigrations(db), "second run is a no-op")

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func newProposal(now models.Millis) models.Proposal {
	return models.Proposal{
		ID:                uuid.NewString(),
		Title:             "Fund the garden",
		Category:          "Treasury",
		Description:       "Allocate tokens",
		AuthorAddress:     "0xaaaa000000000000000000000000000000000001",
		CreatedAt:         now,
		StartTime:         now,
		EndTime:           now.Add(72 * time.Hour),
		Status:            models.StatusActive,
		SnapshotBlock:     6_512_345,
		SnapshotChainID:   30,
		Strategy:          models.StrategyERC20AtBlock,
		Choices:           []string{"For", "Against"},
		TotalForRaw:       "0",
		TotalAgainstRaw:   "0",
		ProposalCIDStatus: models.CIDStatusNone,
		Signature:         "0xsig",
		MessageHash:       "0xhash",
		Timestamp:         now.Seconds(),
	}
}

func TestPostgresRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	now := models.MillisFromTime(time.Now().Truncate(time.Millisecond))

	t.Run("users", func(t *testing.T) {
		w := NewUserWriteRepository(db)
		r := NewUserReadRepository(db)
		addr := "0xbbbb000000000000000000000000000000000001"
		name := "alice_01"

		u, err := r.GetByAddress(ctx, addr)
		require.NoError(t, err)
		assert.Nil(t, u)

		require.NoError(t, w.Save(ctx, addr, &name, nil, now))
		require.NoError(t, w.Save(ctx, addr, nil, nil, now.Add(time.Minute)))

		u, err = r.GetByAddress(ctx, addr)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, name, *u.Username)
		assert.Nil(t, u.Email)
		assert.Equal(t, now, u.CreatedAt)
		assert.Equal(t, now.Add(time.Minute), u.LastLoginAt)

		taken, err := r.UsernameTaken(ctx, name, "0xother")
		require.NoError(t, err)
		assert.True(t, taken)
		taken, err = r.UsernameTaken(ctx, name, addr)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("nonces are single use", func(t *testing.T) {
		w := NewNonceWriteRepository(db)
		r := NewNonceReadRepository(db)
		addr := "0xcccc000000000000000000000000000000000001"

		require.NoError(t, w.Save(ctx, models.Nonce{Address: addr, Value: "first", CreatedAt: now, ExpiresAt: now.Add(5 * time.Minute)}))
		require.NoError(t, w.Save(ctx, models.Nonce{Address: addr, Value: "second", CreatedAt: now, ExpiresAt: now.Add(5 * time.Minute)}))

		n, err := r.Get(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, "second", n.Value)

		ok, err := w.Consume(ctx, addr, "first", now)
		require.NoError(t, err)
		assert.False(t, ok, "overwritten nonce is gone")

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := w.Consume(ctx, addr, "second", now)
				assert.NoError(t, err)
				if ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins)

		n, err = r.Get(ctx, addr)
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("expired nonce cannot be consumed", func(t *testing.T) {
		w := NewNonceWriteRepository(db)
		addr := "0xcccc000000000000000000000000000000000002"
		require.NoError(t, w.Save(ctx, models.Nonce{Address: addr, Value: "n", CreatedAt: now, ExpiresAt: now.Add(time.Second)}))

		ok, err := w.Consume(ctx, addr, "n", now.Add(time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("proposal lifecycle and votes", func(t *testing.T) {
		pw := NewProposalWriteRepository(db)
		pr := NewProposalReadRepository(db)
		vw := NewVoteWriteRepository(db)
		vr := NewVoteReadRepository(db)

		p := newProposal(now)
		p.Status = models.StatusUpcoming
		require.NoError(t, pw.Save(ctx, p))

		got, err := pr.Get(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, p.Choices, got.Choices)
		assert.Equal(t, uint64(6_512_345), got.SnapshotBlock)
		assert.Equal(t, "0", got.TotalForRaw)

		promoted, err := pw.Promote(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, promoted)
		promoted, err = pw.Promote(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, promoted)

		voter := "0xdddd000000000000000000000000000000000001"
		v := models.Vote{
			ProposalID: p.ID, VoterAddress: voter, Choice: models.ChoiceFor,
			WeightRaw: "5000000000000000000", Signature: "0x1", MessageHash: "0xh1",
			SnapshotBlock: p.SnapshotBlock, Timestamp: 1, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, vw.Upsert(ctx, v))

		v.Choice = models.ChoiceAgainst
		v.Signature = "0x2"
		v.CreatedAt = now.Add(time.Hour)
		v.UpdatedAt = now.Add(time.Hour)
		require.NoError(t, vw.Upsert(ctx, v))

		votes, err := vr.ListByProposal(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.Equal(t, models.ChoiceAgainst, votes[0].Choice)
		assert.Equal(t, now, votes[0].CreatedAt, "created_at survives resubmission")
		assert.Equal(t, now.Add(time.Hour), votes[0].UpdatedAt)

		mine, err := vr.Get(ctx, p.ID, voter)
		require.NoError(t, err)
		assert.Equal(t, "5000000000000000000", mine.WeightRaw)

		updated, err := pw.UpdateTotals(ctx, p.ID, models.TallyResult{
			TotalForRaw: "0", TotalAgainstRaw: "5000000000000000000", TotalVoters: 1, TokenPowerVotedRaw: "5000000000000000000",
		})
		require.NoError(t, err)
		assert.True(t, updated)

		final := *got
		final.Status = models.StatusFailed
		final.TotalAgainstRaw = "5000000000000000000"
		final.TokenPowerVotedRaw = "5000000000000000000"
		final.TotalVoters = 1
		at := now.Add(73 * time.Hour)
		final.FinalizedAt = &at

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := pw.Finalize(ctx, final)
				assert.NoError(t, err)
				if ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins)

		updated, err = pw.UpdateTotals(ctx, p.ID, models.TallyResult{
			TotalForRaw: "0", TotalAgainstRaw: "13000000000000000000", TotalVoters: 2, TokenPowerVotedRaw: "13000000000000000000",
		})
		require.NoError(t, err)
		assert.False(t, updated, "finalized totals are frozen")

		cid := "bafyresults"
		require.NoError(t, pw.SetResultsArchive(ctx, p.ID, &cid, models.CIDStatusPinned))
		require.NoError(t, pw.SetProposalArchive(ctx, p.ID, nil, models.CIDStatusFailed))

		got, err = pr.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusFailed, got.Status)
		require.NotNil(t, got.FinalizedAt)
		assert.Equal(t, at, *got.FinalizedAt)
		assert.Equal(t, cid, *got.ResultsCID)
		assert.Equal(t, models.CIDStatusFailed, got.ProposalCIDStatus)
		assert.Nil(t, got.ProposalCID)

		require.NoError(t, pw.Delete(ctx, p.ID))
		votes, err = vr.ListByProposal(ctx, p.ID)
		require.NoError(t, err)
		assert.Empty(t, votes, "votes cascade with the proposal")
	})

	t.Run("imported proposals upsert by snapshot id", func(t *testing.T) {
		pw := NewProposalWriteRepository(db)
		pr := NewProposalReadRepository(db)

		sid := "0xsnap1"
		p := newProposal(now)
		p.SnapshotID = &sid
		p.Strategy = models.StrategySnapshotImport
		p.TotalForRaw = "1500"

		id, inserted, err := pw.UpsertImported(ctx, p)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, p.ID, id)

		p2 := newProposal(now)
		p2.SnapshotID = &sid
		p2.Strategy = models.StrategySnapshotImport
		p2.Title = "Renamed"
		p2.TotalForRaw = "2500"
		p2.Status = models.StatusUpcoming
		id2, inserted, err := pw.UpsertImported(ctx, p2)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, p.ID, id2)

		got, err := pr.GetBySnapshotID(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, "2500", got.TotalForRaw)
		assert.Equal(t, models.StatusActive, got.Status, "re-import never reopens an active proposal")
		assert.True(t, got.Imported())

		closed := *got
		closed.Status = models.StatusClosed
		closedAt := now.Add(time.Hour)
		closed.FinalizedAt = &closedAt
		won, err := pw.Finalize(ctx, closed)
		require.NoError(t, err)
		assert.True(t, won)

		p3 := newProposal(now)
		p3.SnapshotID = &sid
		p3.Strategy = models.StrategySnapshotImport
		_, _, err = pw.UpsertImported(ctx, p3)
		require.NoError(t, err)
		got, err = pr.GetBySnapshotID(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, models.StatusClosed, got.Status, "terminal status survives re-import")

		list, err := pr.List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, list)
	})

	t.Run("proposal updates", func(t *testing.T) {
		pw := NewProposalWriteRepository(db)
		uw := NewProposalUpdateWriteRepository(db)
		ur := NewProposalUpdateReadRepository(db)
		users := NewUserWriteRepository(db)

		p := newProposal(now)
		require.NoError(t, pw.Save(ctx, p))
		name := "author_1"
		require.NoError(t, users.Save(ctx, p.AuthorAddress, &name, nil, now))

		u := models.ProposalUpdate{
			ID: uuid.NewString(), ProposalID: p.ID, AuthorAddress: p.AuthorAddress,
			Status: models.UpdatePlanning, Content: "<p>Kickoff</p>", Attachments: []string{"https://example.org/a.pdf"},
			CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, uw.Save(ctx, u))

		u.Status = models.UpdateCompleted
		u.Attachments = nil
		u.UpdatedAt = now.Add(time.Hour)
		require.NoError(t, uw.Update(ctx, u))

		list, err := ur.ListByProposal(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, models.UpdateCompleted, list[0].Status)
		assert.Equal(t, []string{}, list[0].Attachments)
		require.NotNil(t, list[0].AuthorName)
		assert.Equal(t, name, *list[0].AuthorName)

		require.NoError(t, uw.Delete(ctx, u.ID))
		got, err := ur.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
