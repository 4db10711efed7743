// Package sqlite keeps a library of map documents in one SQLite database
// (~/.mcmaps/library/library.db by default), for use with mcmaps --library.
//
// Each document is a row in documents holding its manifest bytes; pin images
// live in assets, keyed by document location and file name. The schema is
// versioned by the scripts in the migrations package.
//
// The driver is modernc.org/sqlite, so the store builds without cgo.
// Connections run in WAL mode with foreign keys enforced.
package sqlite
