package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gorm.io/gorm"

	"reviewhub/internal/api/models"
)

// Fixed file set and order: parents import before children so foreign
// keys resolve.
const (
	usersFile      = "users.csv"
	categoryFile   = "category.csv"
	genreFile      = "genre.csv"
	titlesFile     = "titles.csv"
	genreTitleFile = "genre_title.csv"
	reviewFile     = "review.csv"
	commentsFile   = "comments.csv"
)

// Importer loads the fixed CSV data set into the database. The whole run
// happens in one transaction: the first row-level failure aborts and
// rolls back everything.
type Importer struct {
	db     *gorm.DB
	dir    string
	logger *slog.Logger
}

func New(db *gorm.DB, dir string, logger *slog.Logger) *Importer {
	return &Importer{db: db, dir: dir, logger: logger}
}

func (im *Importer) Run() error {
	return im.db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			file string
			fn   func(*gorm.DB, record) error
		}{
			{usersFile, im.importUser},
			{categoryFile, im.importCategory},
			{genreFile, im.importGenre},
			{titlesFile, im.importTitle},
			{genreTitleFile, im.importTitleGenre},
			{reviewFile, im.importReview},
			{commentsFile, im.importComment},
		}

		for _, step := range steps {
			count, err := im.importFile(tx, step.file, step.fn)
			if err != nil {
				im.logger.Error("import aborted", "file", step.file, "error", err)
				return fmt.Errorf("import %s: %w", step.file, err)
			}
			im.logger.Info("imported", "file", step.file, "rows", count)
		}

		return im.resetSequences(tx)
	})
}

// sequenceTables lists every table whose rows arrive with explicit ids.
func sequenceTables() []string {
	return []string{
		models.User{}.TableName(),
		models.Category{}.TableName(),
		models.Genre{}.TableName(),
		models.Title{}.TableName(),
		models.TitleGenre{}.TableName(),
		models.Review{}.TableName(),
		models.Comment{}.TableName(),
	}
}

// resetSequences bumps each identity sequence past the imported ids so
// the first API-side insert after an import does not collide.
func (im *Importer) resetSequences(tx *gorm.DB) error {
	for _, table := range sequenceTables() {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))",
			table, table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("reset %s id sequence: %w", table, err)
		}
	}
	return nil
}

// record is one CSV row keyed by header column name.
type record map[string]string

func (r record) str(keys ...string) (string, error) {
	for _, key := range keys {
		if value, ok := r[key]; ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("missing column %q", keys[0])
}

func (r record) int64(keys ...string) (int64, error) {
	raw, err := r.str(keys...)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", keys[0], err)
	}
	return value, nil
}

func (r record) time(keys ...string) (time.Time, error) {
	raw, err := r.str(keys...)
	if err != nil {
		return time.Time{}, err
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", keys[0], err)
	}
	return value, nil
}

func (im *Importer) importFile(tx *gorm.DB, name string, fn func(*gorm.DB, record) error) (int, error) {
	file, err := os.Open(filepath.Join(im.dir, name))
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	count := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}

		rec := make(record, len(header))
		for i, column := range header {
			if i < len(row) {
				rec[column] = row[i]
			}
		}
		if err := fn(tx, rec); err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}
	return count, nil
}

func (im *Importer) importUser(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	username, err := rec.str("username")
	if err != nil {
		return err
	}
	email, err := rec.str("email")
	if err != nil {
		return err
	}
	role, err := rec.str("role")
	if err != nil {
		return err
	}
	if !models.Role(role).Valid() {
		return fmt.Errorf("unknown role %q", role)
	}

	user := models.User{
		ID:        id,
		Username:  username,
		Email:     email,
		Bio:       rec["bio"],
		FirstName: rec["first_name"],
		LastName:  rec["last_name"],
		Role:      models.Role(role),
		IsActive:  true,
	}
	return tx.Create(&user).Error
}

func (im *Importer) importCategory(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	name, err := rec.str("name")
	if err != nil {
		return err
	}
	slug, err := rec.str("slug")
	if err != nil {
		return err
	}
	return tx.Create(&models.Category{ID: id, Name: name, Slug: slug}).Error
}

func (im *Importer) importGenre(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	name, err := rec.str("name")
	if err != nil {
		return err
	}
	slug, err := rec.str("slug")
	if err != nil {
		return err
	}
	return tx.Create(&models.Genre{ID: id, Name: name, Slug: slug}).Error
}

func (im *Importer) importTitle(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	name, err := rec.str("name")
	if err != nil {
		return err
	}
	year, err := rec.int64("year")
	if err != nil {
		return err
	}

	title := models.Title{ID: id, Name: name, Year: int(year)}
	if raw := rec["category"]; raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("column %q: %w", "category", err)
		}
		var category models.Category
		if err := tx.First(&category, "id = ?", categoryID).Error; err != nil {
			return fmt.Errorf("category %d: %w", categoryID, err)
		}
		title.CategoryID = &category.ID
	}
	return tx.Create(&title).Error
}

func (im *Importer) importTitleGenre(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	titleID, err := rec.int64("title_id", "title")
	if err != nil {
		return err
	}
	genreID, err := rec.int64("genre_id", "genre")
	if err != nil {
		return err
	}

	var title models.Title
	if err := tx.First(&title, "id = ?", titleID).Error; err != nil {
		return fmt.Errorf("title %d: %w", titleID, err)
	}
	var genre models.Genre
	if err := tx.First(&genre, "id = ?", genreID).Error; err != nil {
		return fmt.Errorf("genre %d: %w", genreID, err)
	}
	return tx.Create(&models.TitleGenre{ID: id, TitleID: &title.ID, GenreID: &genre.ID}).Error
}

func (im *Importer) importReview(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	titleID, err := rec.int64("title_id", "title")
	if err != nil {
		return err
	}
	authorID, err := rec.int64("author")
	if err != nil {
		return err
	}
	text, err := rec.str("text")
	if err != nil {
		return err
	}
	score, err := rec.int64("score")
	if err != nil {
		return err
	}
	pubDate, err := rec.time("pub_date")
	if err != nil {
		return err
	}

	if score < 1 || score > 10 {
		return fmt.Errorf("score %d out of range", score)
	}
	var title models.Title
	if err := tx.First(&title, "id = ?", titleID).Error; err != nil {
		return fmt.Errorf("title %d: %w", titleID, err)
	}
	var author models.User
	if err := tx.First(&author, "id = ?", authorID).Error; err != nil {
		return fmt.Errorf("author %d: %w", authorID, err)
	}

	review := models.Review{
		ID:       id,
		TitleID:  title.ID,
		AuthorID: author.ID,
		Text:     text,
		Score:    int(score),
		PubDate:  pubDate,
	}
	return tx.Create(&review).Error
}

func (im *Importer) importComment(tx *gorm.DB, rec record) error {
	id, err := rec.int64("id")
	if err != nil {
		return err
	}
	reviewID, err := rec.int64("review_id", "review")
	if err != nil {
		return err
	}
	authorID, err := rec.int64("author")
	if err != nil {
		return err
	}
	text, err := rec.str("text")
	if err != nil {
		return err
	}
	pubDate, err := rec.time("pub_date")
	if err != nil {
		return err
	}

	var review models.Review
	if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
		return fmt.Errorf("review %d: %w", reviewID, err)
	}
	var author models.User
	if err := tx.First(&author, "id = ?", authorID).Error; err != nil {
		return fmt.Errorf("author %d: %w", authorID, err)
	}

	comment := models.Comment{
		ID:       id,
		ReviewID: review.ID,
		AuthorID: author.ID,
		Text:     text,
		PubDate:  pubDate,
	}
	return tx.Create(&comment).Error
}
