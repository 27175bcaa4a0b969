// Package vt implements the VT/ANSI escape-sequence parser: a byte-level
// deterministic finite-state machine that classifies an incoming octet
// stream into dispatchable events, following Paul Flo Williams's VT500
// state-machine model.
//
// The dense transition table in table_gen.go is generated from
// internal/vtgen's declarative rules by cmd/gentable; see that package's
// doc comment for the build procedure.
package vt

//go:generate go run ../cmd/gentable -out table_gen.go
