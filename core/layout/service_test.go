package layout

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzinga/pageforge/core"
)

// stubRepo is a minimal in-memory Repository for exercising the service and
// editor without pulling in a storage package.
type stubRepo struct {
	docs      map[string]Document
	updateErr error
}

var _ Repository = (*stubRepo)(nil)

func newStubRepo(docs ...Document) *stubRepo {
	repo := &stubRepo{docs: make(map[string]Document)}
	for _, doc := range docs {
		repo.docs[doc.Slug] = doc.Clone()
	}
	return repo
}

func (r *stubRepo) CreatePage(ctx context.Context, doc Document) (Document, error) {
	if _, exists := r.docs[doc.Slug]; exists {
		return Document{}, ErrPageExists
	}
	r.docs[doc.Slug] = doc.Clone()
	return doc, nil
}

func (r *stubRepo) GetPageBySlug(ctx context.Context, slug string) (Document, error) {
	doc, ok := r.docs[slug]
	if !ok {
		return Document{}, ErrPageNotFound
	}
	return doc.Clone(), nil
}

func (r *stubRepo) QueryAllPages(ctx context.Context, ordering ...core.DBOrdering) ([]Document, error) {
	docs := make([]Document, 0, len(r.docs))
	for _, doc := range r.docs {
		docs = append(docs, doc.Clone())
	}
	return docs, nil
}

func (r *stubRepo) UpdatePage(ctx context.Context, doc Document) (Document, error) {
	if r.updateErr != nil {
		return Document{}, r.updateErr
	}
	if _, ok := r.docs[doc.Slug]; !ok {
		return Document{}, ErrPageNotFound
	}
	r.docs[doc.Slug] = doc.Clone()
	return doc, nil
}

func (r *stubRepo) DeletePage(ctx context.Context, slug string) error {
	if _, ok := r.docs[slug]; !ok {
		return ErrPageNotFound
	}
	delete(r.docs, slug)
	return nil
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		Definition{ID: "hero", Label: "Hero", DefaultProps: Props{"title": "Welcome"}, Render: noopRender},
		Definition{ID: "card_grid", Label: "Card Grid", Render: noopRender},
	)
	require.NoError(t, err)
	return reg
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	svc := NewService(testRegistry(t), repo)

	t.Run("derives title from slug", func(t *testing.T) {
		doc, err := svc.Create(ctx, NewPage{Slug: "/reviews/betting-sites"})
		require.NoError(t, err)
		assert.Equal(t, "Betting Sites", doc.Title)
		assert.NotNil(t, doc.Sections)
		assert.Empty(t, doc.Sections)
	})

	t.Run("keeps explicit title", func(t *testing.T) {
		doc, err := svc.Create(ctx, NewPage{Slug: "/about", Title: "Who We Are"})
		require.NoError(t, err)
		assert.Equal(t, "Who We Are", doc.Title)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		_, err := svc.Create(ctx, NewPage{Slug: "/about"})
		assert.Equal(t, ErrPageExists, errors.Cause(err))
	})
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	newSvc := func(t *testing.T) (*Service, *stubRepo) {
		repo := newStubRepo(Document{
			Slug:  "/home",
			Title: "Home",
			Sections: []Section{
				{ID: "s1", Component: "hero", IsVisible: true},
			},
		})
		return NewService(testRegistry(t), repo), repo
	}

	t.Run("overwrites metadata and sections", func(t *testing.T) {
		svc, repo := newSvc(t)
		doc, err := svc.Save(ctx, "/home", UpdatePage{
			Title:    "Front Page",
			SeoTitle: "Front Page SEO",
			Sections: []Section{
				{ID: "s2", Component: "card_grid", IsVisible: true},
				{ID: "s1", Component: "hero", IsVisible: false},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Front Page", doc.Title)
		assert.Equal(t, "Front Page SEO", doc.SeoTitle)
		require.Len(t, doc.Sections, 2)
		assert.Equal(t, "s2", doc.Sections[0].ID)
		assert.Equal(t, "s1", doc.Sections[1].ID)

		stored, _ := repo.GetPageBySlug(ctx, "/home")
		assert.Equal(t, doc.Sections, stored.Sections)
	})

	t.Run("nil sections clears the layout", func(t *testing.T) {
		svc, repo := newSvc(t)
		doc, err := svc.Save(ctx, "/home", UpdatePage{Title: "Home"})
		require.NoError(t, err)
		assert.NotNil(t, doc.Sections)
		assert.Empty(t, doc.Sections)

		stored, _ := repo.GetPageBySlug(ctx, "/home")
		assert.Empty(t, stored.Sections)
	})

	t.Run("keeps sections with unregistered components", func(t *testing.T) {
		svc, _ := newSvc(t)
		doc, err := svc.Save(ctx, "/home", UpdatePage{
			Title: "Home",
			Sections: []Section{
				{ID: "s1", Component: "retired_widget", IsVisible: true},
			},
		})
		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "retired_widget", doc.Sections[0].Component)
	})

	t.Run("idempotent", func(t *testing.T) {
		svc, _ := newSvc(t)
		up := UpdatePage{Title: "Home", Sections: []Section{{ID: "s1", Component: "hero", IsVisible: true}}}
		first, err := svc.Save(ctx, "/home", up)
		require.NoError(t, err)
		second, err := svc.Save(ctx, "/home", up)
		require.NoError(t, err)
		assert.Equal(t, first.Sections, second.Sections)
		assert.Equal(t, first.Title, second.Title)
	})

	t.Run("unknown slug", func(t *testing.T) {
		svc, _ := newSvc(t)
		_, err := svc.Save(ctx, "/nope", UpdatePage{})
		assert.Equal(t, ErrPageNotFound, errors.Cause(err))
	})
}

func TestService_GetBySlug_cleansSlug(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
	svc := NewService(testRegistry(t), repo)

	doc, err := svc.GetBySlug(ctx, "  /Home ")
	require.NoError(t, err)
	assert.Equal(t, "/home", doc.Slug)
}

func TestService_UnknownComponentError(t *testing.T) {
	svc := NewService(testRegistry(t), newStubRepo())

	t.Run("with suggestion", func(t *testing.T) {
		err := svc.UnknownComponentError("herro")
		var vErr *core.ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "component", vErr.Fields[0].Field)
		assert.Equal(t, `unknown component "herro"; did you mean "hero"?`, vErr.Fields[0].Error)
	})

	t.Run("without suggestion", func(t *testing.T) {
		err := svc.UnknownComponentError("xyzzy")
		var vErr *core.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, `unknown component "xyzzy"`, vErr.Fields[0].Error)
	})
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{slug: "/", want: "Home"},
		{slug: "/about", want: "About"},
		{slug: "/reviews/betting-sites", want: "Betting Sites"},
		{slug: "/guides/how_to_bet", want: "How To Bet"},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromSlug(tt.slug))
		})
	}
}
