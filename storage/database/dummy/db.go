package dummydb

import (
	"sync"

	"github.com/mzinga/pageforge/core/layout"
)

type (
	// DB is an in-memory stand-in for the real database, used in DEV mode
	// and in tests.
	DB struct {
		page *pageTable
	}

	pageTable struct {
		sync.RWMutex
		table map[string]*layout.Document // keyed by slug
	}
)

func Open() (*DB, error) {
	db := &DB{
		page: &pageTable{table: make(map[string]*layout.Document)},
	}
	return db, nil
}
