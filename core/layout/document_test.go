package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDoc(ids ...string) Document {
	secs := make([]Section, 0, len(ids))
	for _, id := range ids {
		secs = append(secs, Section{ID: id, Component: "hero", IsVisible: true})
	}
	return Document{Slug: "/test", Sections: secs}
}

func sectionIDs(doc Document) []string {
	ids := make([]string, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		ids = append(ids, sec.ID)
	}
	return ids
}

func TestDocument_MoveSection(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		newPos int
		want   []string
	}{
		{name: "to front", id: "c", newPos: 0, want: []string{"c", "a", "b", "d"}},
		{name: "to back", id: "a", newPos: 3, want: []string{"b", "c", "d", "a"}},
		{name: "to middle", id: "d", newPos: 1, want: []string{"a", "d", "b", "c"}},
		{name: "same position is a no-op", id: "b", newPos: 1, want: []string{"a", "b", "c", "d"}},
		{name: "negative target clamps to front", id: "c", newPos: -3, want: []string{"c", "a", "b", "d"}},
		{name: "out of bounds target clamps to back", id: "b", newPos: 42, want: []string{"a", "c", "d", "b"}},
		{name: "unknown id is a no-op", id: "nope", newPos: 0, want: []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc("a", "b", "c", "d")
			doc.MoveSection(tt.id, tt.newPos)
			assert.Equal(t, tt.want, sectionIDs(doc))
		})
	}
}

func TestDocument_MoveSection_preservesSections(t *testing.T) {
	doc := testDoc("a", "b", "c")
	doc.Sections[1].Props = Props{"title": "kept"}
	doc.Sections[1].IsVisible = false

	doc.MoveSection("b", 0)

	sec, ok := doc.FindSection("b")
	assert.True(t, ok)
	assert.Equal(t, Props{"title": "kept"}, sec.Props)
	assert.False(t, sec.IsVisible)
	assert.Len(t, doc.Sections, 3)
}

func TestDocument_RemoveSection(t *testing.T) {
	doc := testDoc("a", "b", "c")

	doc.RemoveSection("b")
	assert.Equal(t, []string{"a", "c"}, sectionIDs(doc))

	// absent id is a no-op, not an error
	doc.RemoveSection("b")
	assert.Equal(t, []string{"a", "c"}, sectionIDs(doc))
}

func TestDocument_UpdateProps(t *testing.T) {
	doc := testDoc("a")
	doc.Sections[0].Props = Props{"title": "Welcome", "count": 5}

	// shallow merge: untouched keys survive successive updates
	doc.UpdateProps("a", Props{"title": "Hello"})
	doc.UpdateProps("a", Props{"subtitle": "There"})

	sec, _ := doc.FindSection("a")
	assert.Equal(t, Props{"title": "Hello", "subtitle": "There", "count": 5}, sec.Props)

	// unknown id is a no-op
	doc.UpdateProps("nope", Props{"title": "x"})
	assert.Len(t, doc.Sections, 1)
}

func TestDocument_ToggleVisibility(t *testing.T) {
	doc := testDoc("a", "b")

	doc.ToggleVisibility("a")
	a, _ := doc.FindSection("a")
	b, _ := doc.FindSection("b")
	assert.False(t, a.IsVisible)
	assert.True(t, b.IsVisible, "only the targeted section is affected")

	doc.ToggleVisibility("a")
	a, _ = doc.FindSection("a")
	assert.True(t, a.IsVisible)
}

func TestDocument_Clone(t *testing.T) {
	doc := testDoc("a")
	doc.Sections[0].Props = Props{"title": "orig"}

	clone := doc.Clone()
	clone.Sections[0].Props["title"] = "changed"
	clone.RemoveSection("a")

	sec, ok := doc.FindSection("a")
	assert.True(t, ok)
	assert.Equal(t, "orig", sec.Props["title"])
}

func TestProps_Clone(t *testing.T) {
	// nil stays nil so a document survives a clone round trip unchanged
	var nilBag Props
	assert.Nil(t, nilBag.Clone())

	p := Props{"title": "orig"}
	c := p.Clone()
	c["title"] = "changed"
	assert.Equal(t, "orig", p["title"])
}

func TestProps_Merge(t *testing.T) {
	var p Props // merging into a nil bag allocates
	p = p.Merge(Props{"a": 1})
	p = p.Merge(Props{"b": 2})
	assert.Equal(t, Props{"a": 1, "b": 2}, p)
}
