package layout

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/mzinga/pageforge/core"
)

// Renderer turns a layout document into the page body by dispatching each
// visible section to its registered component. It is a pure transform:
// rendering the same document twice yields the same output.
type Renderer struct {
	registry *Registry
	logger   core.Logger
}

func NewRenderer(registry *Registry, logger core.Logger) *Renderer {
	return &Renderer{registry: registry, logger: logger}
}

// Render walks the sections in stored order. Hidden sections are omitted
// entirely; a section whose component id does not resolve, or whose render
// fails, is skipped with an operator warning. One broken section never
// blanks the rest of the page.
func (r *Renderer) Render(ctx context.Context, doc Document) string {
	var b strings.Builder
	for i := range doc.Sections {
		sec := doc.Sections[i]
		if !sec.IsVisible {
			continue
		}
		def, ok := r.registry.Find(sec.Component)
		if !ok {
			r.logger.Warn(fmt.Sprintf(
				"page %s: skipping section %s: unknown component %q", doc.Slug, sec.ID, sec.Component))
			continue
		}
		out, err := r.renderSection(ctx, def, sec)
		if err != nil {
			r.logger.Warn(fmt.Sprintf(
				"page %s: skipping section %s (%s): %v", doc.Slug, sec.ID, sec.Component, err), err)
			continue
		}
		b.WriteString(out)
	}
	return b.String()
}

// renderSection isolates a single component render, converting panics into
// errors so a malformed prop cannot take the whole page down.
func (r *Renderer) renderSection(ctx context.Context, def Definition, sec Section) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("render panicked: %v", rec)
		}
	}()
	if def.Render == nil {
		return "", errors.New("definition has no render function")
	}
	return def.Render(ctx, sec.Props)
}
