package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/volatiletech/strmangle"

	"github.com/mzinga/pageforge/core"
)

var (
	// errors
	ErrPageNotFound     = errors.New("page not found")
	ErrPageExists       = errors.New("a page with this slug already exists")
	ErrUnknownComponent = errors.New("unknown section component")
)

type (
	// Repository is the persistence boundary for page layout documents.
	// Slugs match exactly; there is no pattern resolution.
	Repository interface {
		CreatePage(ctx context.Context, doc Document) (Document, error)
		GetPageBySlug(ctx context.Context, slug string) (Document, error)
		QueryAllPages(ctx context.Context, ordering ...core.DBOrdering) ([]Document, error)
		// UpdatePage overwrites the stored metadata and the full ordered
		// section list of the page matching doc.Slug. Idempotent.
		UpdatePage(ctx context.Context, doc Document) (Document, error)
		DeletePage(ctx context.Context, slug string) error
	}

	Service struct {
		registry *Registry
		repo     Repository
	}
)

func NewService(registry *Registry, repo Repository) *Service {
	return &Service{registry: registry, repo: repo}
}

func (svc *Service) Registry() *Registry {
	return svc.registry
}

// Create persists a new page with an empty layout. A missing title is
// derived from the last slug segment.
func (svc *Service) Create(ctx context.Context, np NewPage) (Document, error) {
	title := np.Title
	if title == "" {
		title = TitleFromSlug(np.Slug)
	}
	doc := Document{
		Slug:           np.Slug,
		Title:          title,
		SeoTitle:       np.SeoTitle,
		SeoDescription: np.SeoDescription,
		Sections:       []Section{},
	}
	return svc.repo.CreatePage(ctx, doc)
}

func (svc *Service) GetBySlug(ctx context.Context, slug string) (Document, error) {
	return svc.repo.GetPageBySlug(ctx, core.CleanString(slug, true /* lower */))
}

func (svc *Service) QueryAll(ctx context.Context, ordering ...core.DBOrdering) ([]Document, error) {
	return svc.repo.QueryAllPages(ctx, ordering...)
}

// Save overwrites the page's metadata and section list in one shot.
// Sections referencing component ids no longer in the registry are saved
// as-is rather than dropped; the renderer skips them. Silently deleting an
// admin's content because a component was unregistered would be data loss.
func (svc *Service) Save(ctx context.Context, slug string, up UpdatePage) (Document, error) {
	doc, err := svc.GetBySlug(ctx, slug)
	if err != nil {
		return Document{}, err
	}
	doc.Title = up.Title
	if doc.Title == "" {
		doc.Title = TitleFromSlug(doc.Slug)
	}
	doc.SeoTitle = up.SeoTitle
	doc.SeoDescription = up.SeoDescription
	doc.Sections = up.Sections
	if doc.Sections == nil {
		doc.Sections = []Section{}
	}
	return svc.repo.UpdatePage(ctx, doc)
}

func (svc *Service) Delete(ctx context.Context, slug string) error {
	return svc.repo.DeletePage(ctx, core.CleanString(slug, true /* lower */))
}

// UnknownComponentError builds the admin-facing validation error for a
// component id that does not resolve, suggesting the closest match if any.
func (svc *Service) UnknownComponentError(componentID string) error {
	msg := fmt.Sprintf("unknown component %q", componentID)
	if closest := svc.registry.ClosestID(componentID); closest != "" {
		msg += fmt.Sprintf("; did you mean %q?", closest)
	}
	return core.NewValidationError(ErrUnknownComponent, core.FieldError{Field: "component", Error: msg})
}

// TitleFromSlug derives a display title from the last segment of a page
// path, e.g. "/reviews/betting-sites" -> "Betting Sites".
func TitleFromSlug(slug string) string {
	seg := strings.Trim(slug, "/")
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if seg == "" {
		return "Home"
	}
	words := strings.Split(strings.ReplaceAll(seg, "-", "_"), "_")
	for i, w := range words {
		words[i] = strmangle.TitleCase(w)
	}
	return strings.Join(words, " ")
}
