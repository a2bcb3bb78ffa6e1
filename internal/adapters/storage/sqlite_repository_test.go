package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weft/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return repo
}

func testRun(id, taskName string, startedAt time.Time) domain.TaskRun {
	return domain.TaskRun{
		Command:     "echo hi",
		DurationMs:  12,
		ExecutionID: "exec-1",
		ExitCode:    0,
		ID:          id,
		StartedAt:   startedAt,
		TaskName:    taskName,
	}
}

func TestRecordAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, testRun("run-1", "build", base)))
	require.NoError(t, repo.Record(ctx, testRun("run-2", "test", base.Add(time.Minute))))
	require.NoError(t, repo.Record(ctx, testRun("run-3", "build", base.Add(2*time.Minute))))

	runs, err := repo.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Newest first
	assert.Equal(t, "run-3", runs[0].ID)
	assert.Equal(t, "run-1", runs[2].ID)
}

func TestListFiltersByTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, testRun("run-1", "build", base)))
	require.NoError(t, repo.Record(ctx, testRun("run-2", "test", base.Add(time.Minute))))

	runs, err := repo.List(ctx, "build", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "build", runs[0].TaskName)
}

func TestListAppliesLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		run := testRun("run-"+string(rune('a'+i)), "build", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Record(ctx, run))
	}

	runs, err := repo.List(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRecordRoundTripsFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	original := domain.TaskRun{
		Command:     "sleep 60",
		DurationMs:  500,
		ExecutionID: "exec-9",
		ExitCode:    -1,
		ID:          "run-timeout",
		StartedAt:   time.Date(2026, 8, 24, 11, 30, 0, 0, time.UTC),
		TaskName:    "hang",
		TimedOut:    true,
	}
	require.NoError(t, repo.Record(ctx, original))

	runs, err := repo.List(ctx, "hang", 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, original.Command, got.Command)
	assert.Equal(t, original.DurationMs, got.DurationMs)
	assert.Equal(t, original.ExecutionID, got.ExecutionID)
	assert.Equal(t, original.ExitCode, got.ExitCode)
	assert.True(t, got.TimedOut)
	assert.True(t, original.StartedAt.Equal(got.StartedAt))
}

func TestRecordDuplicateID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	run := testRun("run-1", "build", time.Now().UTC())

	require.NoError(t, repo.Record(ctx, run))
	err := repo.Record(ctx, run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already recorded")
}
