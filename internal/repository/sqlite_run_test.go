package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/alexanderramin/shiftroster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteRunRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	run := testutil.NewTestRun("roster.pdf", testutil.WithCounts(2, 1))
	require.NoError(t, repo.Create(ctx, run))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "roster.pdf", got.SourcePath)
	assert.Equal(t, "out.json", got.OutputPath)
	assert.Equal(t, []string{"AZAN", "HANI"}, got.TargetNames)
	assert.Equal(t, domain.RunOK, got.Status)
	assert.Equal(t, 2, got.StaffCount)
	assert.Equal(t, 1, got.WarningCount)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestRunRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteRunRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunRepo_ListNewestFirst(t *testing.T) {
	repo := NewSQLiteRunRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	old := testutil.NewTestRun("sept.pdf", testutil.WithCreatedAt(base))
	mid := testutil.NewTestRun("oct.pdf", testutil.WithCreatedAt(base.Add(24*time.Hour)))
	last := testutil.NewTestRun("nov.pdf", testutil.WithCreatedAt(base.Add(48*time.Hour)),
		testutil.WithRunStatus(domain.RunEmpty))
	for _, r := range []*domain.ExtractionRun{old, mid, last} {
		require.NoError(t, repo.Create(ctx, r))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"nov.pdf", "oct.pdf", "sept.pdf"},
		[]string{all[0].SourcePath, all[1].SourcePath, all[2].SourcePath})
	assert.Equal(t, domain.RunEmpty, all[0].Status)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRunRepo_EmptyNames(t *testing.T) {
	repo := NewSQLiteRunRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	run := testutil.NewTestRun("roster.pdf")
	run.TargetNames = nil
	require.NoError(t, repo.Create(ctx, run))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TargetNames)
}

func TestRunRepo_Delete(t *testing.T) {
	repo := NewSQLiteRunRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	run := testutil.NewTestRun("roster.pdf")
	require.NoError(t, repo.Create(ctx, run))
	require.NoError(t, repo.Delete(ctx, run.ID))

	_, err := repo.GetByID(ctx, run.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, run.ID), ErrNotFound)
}

func TestRunRepo_RejectsUnknownStatus(t *testing.T) {
	repo := NewSQLiteRunRepo(testutil.NewTestDB(t))

	run := testutil.NewTestRun("roster.pdf", testutil.WithRunStatus("partial"))
	assert.Error(t, repo.Create(context.Background(), run))
}
