package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mzinga/pageforge/core"
	"github.com/mzinga/pageforge/core/layout"
)

const pageColumns = `id, slug, title, seo_title, seo_description, sections, created_at, updated_at`

// uniqueViolation is the postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// orderingColumns whitelists the fields the API may order page listings by.
var orderingColumns = map[string]string{
	"slug":       "slug",
	"title":      "title",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type pageRow struct {
	ID             string      `db:"id"`
	Slug           string      `db:"slug"`
	Title          string      `db:"title"`
	SeoTitle       null.String `db:"seo_title"`
	SeoDescription null.String `db:"seo_description"`
	Sections       []byte      `db:"sections"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

type pageRepository struct {
	db *sqlx.DB
}

var _ layout.Repository = (*pageRepository)(nil) // interface compliance check

func NewPageRepository(db *sqlx.DB) *pageRepository {
	return &pageRepository{db: db}
}

func (repo pageRepository) row(doc layout.Document) (pageRow, error) {
	secs := doc.Sections
	if secs == nil {
		secs = []layout.Section{}
	}
	data, err := json.Marshal(secs)
	if err != nil {
		return pageRow{}, errors.Wrap(err, "marshaling sections")
	}
	return pageRow{
		ID:             doc.ID,
		Slug:           doc.Slug,
		Title:          doc.Title,
		SeoTitle:       null.NewString(doc.SeoTitle, doc.SeoTitle != ""),
		SeoDescription: null.NewString(doc.SeoDescription, doc.SeoDescription != ""),
		Sections:       data,
		CreatedAt:      doc.CreatedAt.UTC(),
		UpdatedAt:      doc.UpdatedAt.UTC(),
	}, nil
}

func (repo pageRepository) unrow(row pageRow) (layout.Document, error) {
	var secs []layout.Section
	if len(row.Sections) > 0 {
		if err := json.Unmarshal(row.Sections, &secs); err != nil {
			return layout.Document{}, errors.Wrapf(err, "unmarshaling sections of page %s", row.Slug)
		}
	}
	if secs == nil {
		secs = []layout.Section{}
	}
	return layout.Document{
		ID:             row.ID,
		Slug:           row.Slug,
		Title:          row.Title,
		SeoTitle:       row.SeoTitle.String,
		SeoDescription: row.SeoDescription.String,
		Sections:       secs,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

// trapErr maps driver errors to the layout package's sentinel errors.
func (repo pageRepository) trapErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return layout.ErrPageNotFound
	}
	if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return layout.ErrPageExists
	}
	return errors.Wrap(err, msg)
}

func (repo pageRepository) CreatePage(ctx context.Context, doc layout.Document) (layout.Document, error) {
	doc.ID = uuid.New().String()
	now := time.Now().UTC()
	doc.CreatedAt, doc.UpdatedAt = now, now

	row, err := repo.row(doc)
	if err != nil {
		return layout.Document{}, err
	}
	query := `INSERT INTO pages (` + pageColumns + `)
		VALUES (:id, :slug, :title, :seo_title, :seo_description, :sections, :created_at, :updated_at)`
	if _, err = repo.db.NamedExecContext(ctx, query, row); err != nil {
		return layout.Document{}, repo.trapErr(err, "inserting page")
	}
	return doc, nil
}

func (repo pageRepository) GetPageBySlug(ctx context.Context, slug string) (layout.Document, error) {
	var row pageRow
	query := `SELECT ` + pageColumns + ` FROM pages WHERE slug = $1`
	if err := repo.db.GetContext(ctx, &row, query, slug); err != nil {
		return layout.Document{}, repo.trapErr(err, "getting page")
	}
	return repo.unrow(row)
}

func (repo pageRepository) QueryAllPages(ctx context.Context, ordering ...core.DBOrdering) ([]layout.Document, error) {
	orderBy := "slug ASC"
	if terms := orderingTerms(ordering); len(terms) > 0 {
		orderBy = strings.Join(terms, ", ")
	}

	var rows []pageRow
	query := fmt.Sprintf(`SELECT `+pageColumns+` FROM pages ORDER BY %s`, orderBy)
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying pages")
	}

	docs := make([]layout.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := repo.unrow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (repo pageRepository) UpdatePage(ctx context.Context, doc layout.Document) (layout.Document, error) {
	doc.UpdatedAt = time.Now().UTC()

	row, err := repo.row(doc)
	if err != nil {
		return layout.Document{}, err
	}
	query := `UPDATE pages
		SET title = :title, seo_title = :seo_title, seo_description = :seo_description,
		    sections = :sections, updated_at = :updated_at
		WHERE slug = :slug`
	res, err := repo.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return layout.Document{}, repo.trapErr(err, "updating page")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return layout.Document{}, layout.ErrPageNotFound
	}
	return repo.GetPageBySlug(ctx, doc.Slug)
}

func (repo pageRepository) DeletePage(ctx context.Context, slug string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM pages WHERE slug = $1`, slug)
	if err != nil {
		return errors.Wrap(err, "deleting page")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return layout.ErrPageNotFound
	}
	return nil
}

func orderingTerms(ordering []core.DBOrdering) []string {
	terms := make([]string, 0, len(ordering))
	for _, ord := range ordering {
		col, ok := orderingColumns[ord.Field]
		if !ok {
			continue // unknown fields are silently dropped
		}
		terms = append(terms, core.DBOrdering{Field: col, Ascending: ord.Ascending}.String())
	}
	return terms
}
