package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/mzinga/pageforge/core/layout"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db       *sql.DB
	registry *layout.Registry
	pageRepo layout.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run DB migrations (up, down, status, ...)")
	fmt.Println("  addpage -slug SLUG [-title TITLE] - create a page with an empty layout")
	fmt.Println("  addsection -slug SLUG -component ID - append a section to a page's layout")
	fmt.Println("  listpages - list all pages and their section counts")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addPageCmd := flag.NewFlagSet("addpage", flag.ExitOnError)
	addPageSlug := addPageCmd.String("slug", "", "The page's /-prefixed path.")
	addPageTitle := addPageCmd.String("title", "", "Optional display title; derived from the slug when empty.")

	addSectionCmd := flag.NewFlagSet("addsection", flag.ExitOnError)
	addSectionSlug := addSectionCmd.String("slug", "", "The page's /-prefixed path.")
	addSectionComponent := addSectionCmd.String("component", "", "A registered component id.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "addpage":
		if err := addPageCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addPageSlug == "" {
			addPageCmd.Usage()
			return errHelp
		}
		return cli.addPage(*addPageSlug, *addPageTitle)
	case "addsection":
		if err := addSectionCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addSectionSlug == "" || *addSectionComponent == "" {
			addSectionCmd.Usage()
			return errHelp
		}
		return cli.addSection(*addSectionSlug, *addSectionComponent)
	case "listpages":
		return cli.listPages()
	default:
		cli.printUsage()
		return errHelp
	}
}
