package layout

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNoPageLoaded = errors.New("no page loaded")

// Editor is a single-writer editing session over one page's layout.
// All mutations are synchronous and in-memory; only Load and Save touch the
// repository. Save hands over the whole ordered list (no incremental
// persistence) and leaves the working copy untouched on failure so it can
// simply be retried.
type Editor struct {
	registry *Registry
	repo     Repository
	doc      Document
	loaded   bool
}

func NewEditor(registry *Registry, repo Repository) *Editor {
	return &Editor{registry: registry, repo: repo}
}

// Load replaces the working copy with the persisted document for slug.
func (ed *Editor) Load(ctx context.Context, slug string) error {
	doc, err := ed.repo.GetPageBySlug(ctx, slug)
	if err != nil {
		return errors.Wrap(err, "loading page")
	}
	ed.doc = doc
	ed.loaded = true
	return nil
}

// Document returns a deep copy of the working document.
func (ed *Editor) Document() Document {
	return ed.doc.Clone()
}

// AddSection appends a new instance of the given component type to the end
// of the layout, visible and seeded with the definition's default props.
func (ed *Editor) AddSection(definitionID string) (Section, error) {
	if !ed.loaded {
		return Section{}, ErrNoPageLoaded
	}
	def, ok := ed.registry.Find(definitionID)
	if !ok {
		return Section{}, errors.Wrapf(ErrUnknownComponent, "%q", definitionID)
	}
	sec := Section{
		ID:        uuid.New().String(),
		Component: def.ID,
		IsVisible: true,
		Props:     def.DefaultProps.Clone(),
	}
	ed.doc.AppendSection(sec)
	return sec, nil
}

func (ed *Editor) RemoveSection(sectionID string) {
	ed.doc.RemoveSection(sectionID)
}

func (ed *Editor) MoveSection(sectionID string, newPos int) {
	ed.doc.MoveSection(sectionID, newPos)
}

func (ed *Editor) UpdateProps(sectionID string, partial Props) {
	ed.doc.UpdateProps(sectionID, partial)
}

func (ed *Editor) ToggleVisibility(sectionID string) {
	ed.doc.ToggleVisibility(sectionID)
}

// Save persists the working document as-is. Repeating a failed Save with
// the same document produces the same persisted result (idempotent
// overwrite, last write wins).
func (ed *Editor) Save(ctx context.Context) error {
	if !ed.loaded {
		return ErrNoPageLoaded
	}
	doc, err := ed.repo.UpdatePage(ctx, ed.doc)
	if err != nil {
		return errors.Wrap(err, "saving page")
	}
	ed.doc = doc
	return nil
}
