package testutil

import (
	"context"
	"io/ioutil"
	"log"
	"testing"

	"github.com/mzinga/pageforge/core"
	"github.com/mzinga/pageforge/core/layout"
	logsvc "github.com/mzinga/pageforge/services/logger"
)

// NewLogger returns a logger that swallows all output.
func NewLogger() core.Logger {
	return logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
}

// NewTestConfig returns a config suitable for tests, bypassing env loading.
func NewTestConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		TestMode: true,
		AppName:  "Pageforge",
		SiteName: "BetScout",
	}
}

// CreatePage persists a page with the given layout.
func CreatePage(
	t *testing.T,
	repo layout.Repository,
	slug, title string,
	sections ...layout.Section,
) layout.Document {
	t.Helper()

	doc, err := repo.CreatePage(context.Background(), layout.Document{
		Slug:     slug,
		Title:    title,
		Sections: []layout.Section{},
	})
	if err != nil {
		t.Fatalf("CreatePage() failed: %v", err)
	}
	if len(sections) > 0 {
		doc.Sections = sections
		if doc, err = repo.UpdatePage(context.Background(), doc); err != nil {
			t.Fatalf("CreatePage() failed: %v", err)
		}
	}
	return doc
}

// NewSection builds a section instance without going through a registry.
func NewSection(id, component string, visible bool, props layout.Props) layout.Section {
	return layout.Section{
		ID:        id,
		Component: component,
		IsVisible: visible,
		Props:     props,
	}
}
