package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	sqlDB, err := Open(path)
	require.NoError(t, err)
	defer sqlDB.Close()

	reports, err := ListReports(sqlDB, "")
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestSaveReport_GetReport(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	id, err := SaveReport(sqlDB, "features/login.feature", "Login", []byte(`{"name":"Login"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	r, err := GetReport(sqlDB, id)
	require.NoError(t, err)
	assert.Equal(t, "features/login.feature", r.URI)
	assert.Equal(t, "Login", r.FeatureName)
	assert.Equal(t, `{"name":"Login"}`, r.Document)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestGetReport_NotFound(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = GetReport(sqlDB, 42)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestListReports_NewestFirstAndFiltered(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	_, err = SaveReport(sqlDB, "a.feature", "A", []byte(`{}`))
	require.NoError(t, err)
	_, err = SaveReport(sqlDB, "b.feature", "B", []byte(`{}`))
	require.NoError(t, err)
	_, err = SaveReport(sqlDB, "a.feature", "A", []byte(`{}`))
	require.NoError(t, err)

	all, err := ListReports(sqlDB, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID)
	assert.Equal(t, int64(1), all[2].ID)

	onlyA, err := ListReports(sqlDB, "a.feature")
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	for _, r := range onlyA {
		assert.Equal(t, "a.feature", r.URI)
	}
}
