package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/mzinga/pageforge/core/layout"
)

// addPage creates a page with an empty layout.
func (cli *commandLine) addPage(slug, title string) error {
	svc := layout.NewService(cli.registry, cli.pageRepo)

	np := layout.NewPage{Slug: slug, Title: title}
	if err := np.Validate(); err != nil {
		return err
	}
	doc, err := svc.Create(context.Background(), np)
	if err != nil {
		return err
	}
	fmt.Printf("created page %s (%q)\n", doc.Slug, doc.Title)
	return nil
}

// addSection appends a new instance of the given component to the end of a
// page's layout and saves it.
func (cli *commandLine) addSection(slug, component string) error {
	ctx := context.Background()
	svc := layout.NewService(cli.registry, cli.pageRepo)
	ed := layout.NewEditor(cli.registry, cli.pageRepo)

	if err := ed.Load(ctx, slug); err != nil {
		return err
	}
	sec, err := ed.AddSection(component)
	if err != nil {
		if errors.Cause(err) == layout.ErrUnknownComponent {
			return svc.UnknownComponentError(component)
		}
		return err
	}
	if err := ed.Save(ctx); err != nil {
		return err
	}
	fmt.Printf("added %s section %s to %s\n", sec.Component, sec.ID, slug)
	return nil
}

func (cli *commandLine) listPages() error {
	docs, err := cli.pageRepo.QueryAllPages(context.Background())
	if err != nil {
		return err
	}
	for _, doc := range docs {
		fmt.Printf("%-40s %-30q %d section(s)\n", doc.Slug, doc.Title, len(doc.Sections))
	}
	return nil
}
