// Package isiskit turns ISIS tagged field records, as exported by SciELO
// collections, into typed bibliographic entities.
package isiskit

const (
	Version = "0.1.0"
	AppName = "isiskit"
)
