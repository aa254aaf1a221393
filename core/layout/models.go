package layout

import (
	"time"

	"github.com/mzinga/pageforge/core"
)

// Props is the configuration bag handed to a section component's renderer.
// Values are JSON-shaped (strings, numbers, bools, lists, maps).
type Props map[string]interface{}

// Clone returns a shallow copy of the bag. A nil bag stays nil so documents
// round-trip through clone-on-write repositories unchanged; Merge allocates
// when a mutation needs it.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Merge sets every key of partial on p and returns p. Keys absent from
// partial are left untouched.
func (p Props) Merge(partial Props) Props {
	if p == nil {
		p = make(Props, len(partial))
	}
	for k, v := range partial {
		p[k] = v
	}
	return p
}

// Section is one concrete placement of a component type within a page.
// ID is assigned once at creation and stays stable across reorders; it is
// the reconciliation key for the admin UI's drag & drop.
type Section struct {
	ID        string `json:"id" validate:"required"`
	Component string `json:"component" validate:"required"`
	IsVisible bool   `json:"is_visible"`
	Props     Props  `json:"props"`
}

// Document is the full ordered layout of one page, keyed by slug.
// Sections slice order is the sole source of rendering order.
type Document struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	SeoTitle       string    `json:"seo_title"`
	SeoDescription string    `json:"seo_description"`
	Sections       []Section `json:"sections"`
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

// NewPage contains information needed to create a new page Document.
type NewPage struct {
	Slug           string `json:"slug" validate:"required,pagepath"`
	Title          string `json:"title"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
}

func (np *NewPage) Validate() error {
	np.Slug = core.CleanString(np.Slug, true /* lower */)
	np.Title = core.CleanString(np.Title)
	return core.Validate.Struct(np)
}

// UpdatePage carries a page's metadata plus the full ordered section list
// as edited; saving is a whole-document overwrite (last write wins).
// An empty Sections list is a valid layout and clears the page.
type UpdatePage struct {
	Title          string    `json:"title"`
	SeoTitle       string    `json:"seo_title"`
	SeoDescription string    `json:"seo_description"`
	Sections       []Section `json:"sections" validate:"omitempty,unique=ID,dive"`
}

func (up *UpdatePage) Validate() error {
	up.Title = core.CleanString(up.Title)
	return core.Validate.Struct(up)
}
