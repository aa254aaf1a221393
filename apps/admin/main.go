package main

import (
	"log"
	"os"

	"github.com/mzinga/pageforge/core"
	"github.com/mzinga/pageforge/core/sections"
	"github.com/mzinga/pageforge/storage/database"
	sqlxrepos "github.com/mzinga/pageforge/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(db.Ping())

	registry, err := sections.Registry()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		db:       db.DB,
		registry: registry,
		pageRepo: sqlxrepos.NewPageRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
