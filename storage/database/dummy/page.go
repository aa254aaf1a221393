package dummydb

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mzinga/pageforge/core"
	"github.com/mzinga/pageforge/core/layout"
)

type pageRepository struct {
	db *pageTable
}

var _ layout.Repository = (*pageRepository)(nil) // interface compliance check

func NewPageRepository(db *DB) *pageRepository {
	return &pageRepository{db: db.page}
}

func (repo *pageRepository) CreatePage(_ context.Context, doc layout.Document) (layout.Document, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, exists := repo.db.table[doc.Slug]; exists {
		return layout.Document{}, layout.ErrPageExists
	}

	doc.ID = uuid.New().String()
	now := time.Now().UTC()
	doc.CreatedAt, doc.UpdatedAt = now, now
	stored := doc.Clone()
	repo.db.table[doc.Slug] = &stored
	return doc, nil
}

func (repo *pageRepository) GetPageBySlug(_ context.Context, slug string) (layout.Document, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if doc, ok := repo.db.table[slug]; ok {
		return doc.Clone(), nil
	}
	return layout.Document{}, layout.ErrPageNotFound
}

func (repo *pageRepository) QueryAllPages(_ context.Context, ordering ...core.DBOrdering) ([]layout.Document, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	docs := make([]layout.Document, 0, len(repo.db.table))
	for _, doc := range repo.db.table {
		docs = append(docs, doc.Clone())
	}
	sortDocs(docs, ordering)
	return docs, nil
}

func (repo *pageRepository) UpdatePage(_ context.Context, doc layout.Document) (layout.Document, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[doc.Slug]
	if !ok {
		return layout.Document{}, layout.ErrPageNotFound
	}

	doc.ID = orig.ID
	doc.CreatedAt = orig.CreatedAt
	doc.UpdatedAt = time.Now().UTC()
	stored := doc.Clone()
	repo.db.table[doc.Slug] = &stored
	return doc, nil
}

func (repo *pageRepository) DeletePage(_ context.Context, slug string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[slug]; !ok {
		return layout.ErrPageNotFound
	}
	delete(repo.db.table, slug)
	return nil
}

// sortDocs applies the ordering terms in sequence; it falls back to slug ASC
// so listings are deterministic.
func sortDocs(docs []layout.Document, ordering []core.DBOrdering) {
	if len(ordering) == 0 {
		ordering = []core.DBOrdering{{Field: "slug", Ascending: true}}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, ord := range ordering {
			cmp := compareDocs(docs[i], docs[j], ord.Field)
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
}

func compareDocs(a, b layout.Document, field string) int {
	switch field {
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "created_at":
		return compareTimes(a.CreatedAt, b.CreatedAt)
	case "updated_at":
		return compareTimes(a.UpdatedAt, b.UpdatedAt)
	default:
		return strings.Compare(a.Slug, b.Slug)
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
