package layout

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// RenderFunc produces a section component's output for the given props.
type RenderFunc func(ctx context.Context, props Props) (string, error)

// Definition describes one renderable component type available for
// composition: its registry id, admin-facing label, the default props new
// instances are seeded with, and the render function the public site
// dispatches to.
type Definition struct {
	ID           string     `json:"id"`
	Label        string     `json:"label"`
	DefaultProps Props      `json:"default_props"`
	Render       RenderFunc `json:"-"`
}

// Registry is the fixed catalog of component types. It is built once at
// startup and passed by reference to the editor, the page service and the
// renderer; there is no package-level singleton.
type Registry struct {
	defs  []Definition
	index map[string]int
}

func NewRegistry(defs ...Definition) (*Registry, error) {
	reg := &Registry{
		defs:  defs,
		index: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if def.ID == "" {
			return nil, errors.New("registry: definition with empty id")
		}
		if _, exists := reg.index[def.ID]; exists {
			return nil, errors.Errorf("registry: duplicate definition id %q", def.ID)
		}
		reg.index[def.ID] = i
	}
	return reg, nil
}

// Definitions returns the catalog in registration order.
func (reg *Registry) Definitions() []Definition {
	defs := make([]Definition, len(reg.defs))
	copy(defs, reg.defs)
	return defs
}

// Find resolves a component id. Absence is not an error; callers skip the
// section (renderer) or reject the input (editor).
func (reg *Registry) Find(id string) (Definition, bool) {
	if i, ok := reg.index[id]; ok {
		return reg.defs[i], true
	}
	return Definition{}, false
}

// minClosestRatio is the similarity below which ClosestID gives up.
const minClosestRatio = .5

// ClosestID returns the registered id most similar to the given unknown id,
// or "" when nothing comes close. Used to enrich admin validation messages.
func (reg *Registry) ClosestID(id string) string {
	var best string
	var bestRatio float64
	for _, def := range reg.defs {
		ratio := difflib.NewMatcher(
			strings.Split(id, ""),
			strings.Split(def.ID, ""),
		).QuickRatio()
		if ratio > bestRatio {
			best, bestRatio = def.ID, ratio
		}
	}
	if bestRatio < minClosestRatio {
		return ""
	}
	return best
}
