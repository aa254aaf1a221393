package layout

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedEditor(t *testing.T, repo Repository) *Editor {
	t.Helper()
	ed := NewEditor(testRegistry(t), repo)
	require.NoError(t, ed.Load(context.Background(), "/home"))
	return ed
}

func TestEditor_requiresLoadedPage(t *testing.T) {
	ed := NewEditor(testRegistry(t), newStubRepo())

	_, err := ed.AddSection("hero")
	assert.Equal(t, ErrNoPageLoaded, err)
	assert.Equal(t, ErrNoPageLoaded, ed.Save(context.Background()))
}

func TestEditor_Load_unknownSlug(t *testing.T) {
	ed := NewEditor(testRegistry(t), newStubRepo())
	err := ed.Load(context.Background(), "/nope")
	assert.Equal(t, ErrPageNotFound, errors.Cause(err))
}

func TestEditor_AddSection(t *testing.T) {
	repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
	ed := loadedEditor(t, repo)

	sec, err := ed.AddSection("hero")
	require.NoError(t, err)
	assert.NotEmpty(t, sec.ID)
	assert.Equal(t, "hero", sec.Component)
	assert.True(t, sec.IsVisible)
	assert.Equal(t, Props{"title": "Welcome"}, sec.Props)

	// the instance got its own prop bag, not the registry's
	sec.Props["title"] = "mutated"
	def, _ := ed.registry.Find("hero")
	assert.Equal(t, Props{"title": "Welcome"}, def.DefaultProps)

	second, err := ed.AddSection("hero")
	require.NoError(t, err)
	assert.NotEqual(t, sec.ID, second.ID, "each instance gets a fresh id")

	doc := ed.Document()
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, sec.ID, doc.Sections[0].ID)
	assert.Equal(t, second.ID, doc.Sections[1].ID)
}

func TestEditor_AddSection_unknownComponent(t *testing.T) {
	repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
	ed := loadedEditor(t, repo)

	_, err := ed.AddSection("carousel")
	assert.Equal(t, ErrUnknownComponent, errors.Cause(err))
	assert.Empty(t, ed.Document().Sections, "nothing appended")
}

func TestEditor_editing(t *testing.T) {
	repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
	ed := loadedEditor(t, repo)

	hero, err := ed.AddSection("hero")
	require.NoError(t, err)
	grid, err := ed.AddSection("card_grid")
	require.NoError(t, err)

	ed.MoveSection(grid.ID, 0)
	ed.UpdateProps(hero.ID, Props{"subtitle": "Straight odds"})
	ed.ToggleVisibility(grid.ID)

	doc := ed.Document()
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, grid.ID, doc.Sections[0].ID)
	assert.False(t, doc.Sections[0].IsVisible)
	assert.Equal(t, Props{"title": "Welcome", "subtitle": "Straight odds"}, doc.Sections[1].Props)

	ed.RemoveSection(hero.ID)
	assert.Len(t, ed.Document().Sections, 1)
}

func TestEditor_Document_isACopy(t *testing.T) {
	repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
	ed := loadedEditor(t, repo)

	sec, err := ed.AddSection("hero")
	require.NoError(t, err)

	doc := ed.Document()
	doc.Sections[0].Props["title"] = "tampered"
	doc.RemoveSection(sec.ID)

	fresh := ed.Document()
	require.Len(t, fresh.Sections, 1)
	assert.Equal(t, "Welcome", fresh.Sections[0].Props["title"])
}

func TestEditor_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the working copy", func(t *testing.T) {
		repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
		ed := loadedEditor(t, repo)

		sec, err := ed.AddSection("hero")
		require.NoError(t, err)
		require.NoError(t, ed.Save(ctx))

		stored, err := repo.GetPageBySlug(ctx, "/home")
		require.NoError(t, err)
		require.Len(t, stored.Sections, 1)
		assert.Equal(t, sec.ID, stored.Sections[0].ID)
	})

	t.Run("failure leaves the working copy untouched", func(t *testing.T) {
		repo := newStubRepo(Document{Slug: "/home", Title: "Home"})
		ed := loadedEditor(t, repo)

		sec, err := ed.AddSection("hero")
		require.NoError(t, err)

		repo.updateErr = errors.New("connection reset")
		err = ed.Save(ctx)
		require.Error(t, err)

		doc := ed.Document()
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, sec.ID, doc.Sections[0].ID)

		// retry succeeds with the same document
		repo.updateErr = nil
		require.NoError(t, ed.Save(ctx))
		stored, _ := repo.GetPageBySlug(ctx, "/home")
		assert.Len(t, stored.Sections, 1)
	})
}
