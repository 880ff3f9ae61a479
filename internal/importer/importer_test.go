package importer

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestRecordHelpers(t *testing.T) {
	rec := record{
		"id":       "7",
		"title":    "3",
		"pub_date": "2019-09-24T21:08:21.567Z",
	}

	id, err := rec.int64("id")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	// fallback column names
	titleID, err := rec.int64("title_id", "title")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), titleID)

	when, err := rec.time("pub_date")
	assert.NoError(t, err)
	assert.Equal(t, 2019, when.UTC().Year())
	assert.Equal(t, time.September, when.UTC().Month())

	_, err = rec.str("missing")
	assert.Error(t, err)

	rec["id"] = "not-a-number"
	_, err = rec.int64("id")
	assert.Error(t, err)
}

func TestImportFile_ReadsRowsByHeader(t *testing.T) {
	dir := t.TempDir()
	csv := "id,name,slug\n1,Movies,movies\n2,Books,books\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "category.csv"), []byte(csv), 0o644))

	im := New(nil, dir, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var seen []record
	count, err := im.importFile(nil, "category.csv", func(_ *gorm.DB, rec record) error {
		seen = append(seen, rec)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Movies", seen[0]["name"])
	assert.Equal(t, "books", seen[1]["slug"])
}

func TestSequenceTables_CoverEveryImportedTable(t *testing.T) {
	tables := sequenceTables()

	assert.ElementsMatch(t, []string{
		"users",
		"categories",
		"genres",
		"titles",
		"title_genres",
		"reviews",
		"comments",
	}, tables)
}

func TestImportFile_MissingFile(t *testing.T) {
	im := New(nil, t.TempDir(), slog.New(slog.NewTextHandler(os.Stderr, nil)))

	_, err := im.importFile(nil, "users.csv", func(_ *gorm.DB, _ record) error { return nil })
	assert.Error(t, err)
}

func TestImportFile_RowErrorIncludesLine(t *testing.T) {
	dir := t.TempDir()
	csv := "id,name,slug\n1,Movies,movies\nbad,Books,books\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "category.csv"), []byte(csv), 0o644))

	im := New(nil, dir, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	count, err := im.importFile(nil, "category.csv", func(_ *gorm.DB, rec record) error {
		_, err := rec.int64("id")
		return err
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, 1, count)
}
