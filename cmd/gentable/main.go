// Command gentable expands internal/vtgen's declarative VT500 state-machine
// rules into vt/table_gen.go, the dense [states][256]stateTransition lookup
// table the parser decodes bytes against.
//
// Run via `go generate ./vt` (see the //go:generate directive in
// vt/doc.go). The output is committed rather than built on every compile,
// so the parser pays no table-construction cost at process start.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corvanis/vtcore/internal/vtgen"
)

func main() {
	out := flag.String("out", "vt/table_gen.go", "output file path")
	flag.Parse()

	buf, err := render()
	if err != nil {
		log.Fatalf("gentable: %v", err)
	}
	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		log.Fatalf("gentable: writing %s: %v", *out, err)
	}
}

type cell struct {
	action string
	next   string
	hasNxt bool
}

func render() ([]byte, error) {
	states := vtgen.States
	idx := make(map[string]int, len(states))
	for i, s := range states {
		idx[s] = i
	}

	table := make([][256]cell, len(states))
	for i := range table {
		for b := 0; b < 256; b++ {
			table[i][b] = cell{action: "none"}
		}
	}

	// Pass 1: anywhere rules apply to every state.
	for _, r := range vtgen.Anywhere {
		for s := range states {
			applyRule(&table[s], r)
		}
	}
	// Pass 2: per-state rules override anywhere for the same byte.
	for _, s := range states {
		for _, r := range vtgen.Rules(s) {
			applyRule(&table[idx[s]], r)
		}
	}

	var b bytes.Buffer
	fmt.Fprintln(&b, "// Code generated by cmd/gentable; DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "package vt")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "const numStates = %d\n\n", len(states))

	fmt.Fprintln(&b, "var stateNames = [numStates]string{")
	for _, s := range states {
		fmt.Fprintf(&b, "\t%q,\n", s)
	}
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "var entryAction = [numStates]parserAction{")
	for i, s := range states {
		fmt.Fprintf(&b, "\t%d: %s,\n", i, actionConst(entryFor(s)))
	}
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "var exitAction = [numStates]parserAction{")
	for i, s := range states {
		fmt.Fprintf(&b, "\t%d: %s,\n", i, actionConst(exitFor(s)))
	}
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "// transitionTable[state][byte] is the total, dense lookup driving Parser.Advance.")
	fmt.Fprintln(&b, "var transitionTable = [numStates][256]stateTransition{")
	for i := range states {
		fmt.Fprintf(&b, "\t%d: { // %s\n", i, states[i])
		for by := 0; by < 256; by++ {
			c := table[i][by]
			if c.hasNxt {
				fmt.Fprintf(&b, "\t\t0x%02x: {action: %s, next: %d, hasNext: true},\n", by, actionConst(c.action), idx[c.next])
			} else {
				fmt.Fprintf(&b, "\t\t0x%02x: {action: %s},\n", by, actionConst(c.action))
			}
		}
		fmt.Fprintln(&b, "\t},")
	}
	fmt.Fprintln(&b, "}")

	return b.Bytes(), nil
}

func applyRule(row *[256]cell, r vtgen.Rule) {
	for by := int(r.Lo); by <= int(r.Hi); by++ {
		row[by] = cell{action: actionName(r.Action), next: r.Next, hasNxt: r.Next != ""}
	}
}

func actionName(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func actionConst(s string) string {
	if s == "" || s == "none" {
		return "actionNone"
	}
	return "action" + exportName(s)
}

func entryFor(state string) string { return vtgen.EntryAction[state] }
func exitFor(state string) string  { return vtgen.ExitAction[state] }

// exportName upper-cases the first rune of a lowerCamel identifier, e.g.
// "csiEntry" -> "CsiEntry", "escDispatch" -> "EscDispatch".
func exportName(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
