package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant/internal/models"
	"github.com/Skotchmaster/restaurant/internal/repo"
	pkgdb "github.com/Skotchmaster/restaurant/pkg/db"
)

type recordingIndexer struct {
	items []models.MenuItem
	err   error
}

func (r *recordingIndexer) Index(_ context.Context, item models.MenuItem) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, item)
	return nil
}

func InitTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.Migrate(context.Background()))
	return r
}

func TestDefaultMenuParses(t *testing.T) {
	f, err := Parse(DefaultMenu)
	require.NoError(t, err)
	assert.NotEmpty(t, f.MenuItems)
}

func TestParseRejectsBadItems(t *testing.T) {
	_, err := Parse([]byte("menu_items:\n  - price: 3\n"))
	require.Error(t, err)

	_, err = Parse([]byte("menu_items:\n  - name: Free lunch\n    price: -1\n"))
	require.Error(t, err)

	_, err = Parse([]byte("menu_items: [unclosed"))
	require.Error(t, err)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)
	data := []byte(`
menu_items:
  - name: Soup
    description: of the day
    price: 5
  - name: Bread
    price: 2
`)

	idx := &recordingIndexer{}
	res, err := Run(ctx, r, idx, data)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 2, res.Indexed)
	require.Len(t, idx.items, 2)
	assert.NotZero(t, idx.items[0].ID)

	res, err = Run(ctx, r, nil, data)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 2, res.Skipped)

	items, err := r.ListMenuItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRunKeepsGoingWhenIndexFails(t *testing.T) {
	ctx := context.Background()
	r := InitTestRepo(t)

	res, err := Run(ctx, r, &recordingIndexer{err: errors.New("es down")}, DefaultMenu)
	require.NoError(t, err)
	assert.Positive(t, res.Created)
	assert.Zero(t, res.Indexed)
}
