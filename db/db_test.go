package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
)

func openTemp(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Open(Path(filepath.Join(t.TempDir(), "data")))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	path := Path(t.TempDir())

	database, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = Open(path)
	require.NoError(t, err)
	defer database.Close()

	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSaveAndLoadPlay(t *testing.T) {
	database := openTemp(t)

	p := play.New("Horns", play.FullCourt)
	p.Current().AddPlayer(play.NewPlayer("1", geom.Pt(470, 250), 0))
	p.AddFrame()

	id, err := SavePlay(database, p)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := LoadPlay(database, "Horns")
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Court, got.Court)
	assert.Equal(t, p.Frames[0].Players, got.Frames[0].Players)
	assert.Equal(t, 2, got.Len())
}

func TestSavePlay_UpsertsByName(t *testing.T) {
	database := openTemp(t)

	p := play.New("Spain", play.HalfCourt)
	first, err := SavePlay(database, p)
	require.NoError(t, err)

	p.AddBlankFrame()
	second, err := SavePlay(database, p)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	plays, err := SelectPlays(database)
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, 2, plays[0].FrameCount)
	assert.Equal(t, "half", plays[0].Court)
}

func TestSelectPlays(t *testing.T) {
	database := openTemp(t)

	for _, name := range []string{"Chin", "Floppy", "Iverson"} {
		_, err := SavePlay(database, play.New(name, play.HalfCourt))
		require.NoError(t, err)
	}

	plays, err := SelectPlays(database)
	require.NoError(t, err)
	var names []string
	for _, r := range plays {
		names = append(names, r.Name)
		assert.Empty(t, r.Document)
		assert.False(t, r.CreatedAt.IsZero())
	}
	assert.ElementsMatch(t, []string{"Chin", "Floppy", "Iverson"}, names)
}

func TestDeletePlay(t *testing.T) {
	database := openTemp(t)
	_, err := SavePlay(database, play.New("Zipper", play.HalfCourt))
	require.NoError(t, err)

	require.NoError(t, DeletePlay(database, "Zipper"))
	assert.ErrorIs(t, DeletePlay(database, "Zipper"), ErrNotFound)

	_, err = LoadPlay(database, "Zipper")
	assert.ErrorIs(t, err, ErrNotFound)
}
