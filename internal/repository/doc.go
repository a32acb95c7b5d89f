// Package repository defines the device source abstraction for netupdate.
//
// A DeviceSource yields the name -> IP table for one device class. The loader
// package reads flat JSON and YAML files directly; sources that need a
// connection, such as the sqlite subpackage, implement DeviceSource.
//
// # SQLite Implementation
//
// The sqlite implementation reads a single devices table:
//
//	CREATE TABLE devices (
//		name  TEXT NOT NULL,
//		class TEXT NOT NULL,
//		ip    TEXT NOT NULL,
//		PRIMARY KEY (class, name)
//	);
//
// Rows are returned in rowid order. The database is never written; session
// results go to the flat output files only.
package repository
