// Package services holds the application logic behind the driving ports:
// searching a document, editing it through a PackageStore, reading
// settings and coalescing package change events.
//
// The world oracle is reached only through driven.OracleFactory, so this
// package builds with or without cgo.
package services
