package main

import (
	"flag"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/treerex"
	"github.com/npillmayer/treerex/algebra"
	"github.com/npillmayer/treerex/rewrite"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("T.REWL"), where users may enter
// arithmetic/trig expressions. T.REWL parses each line, applies the demo
// rule set (double-angle, square expansion, Pythagorean identity) until the
// term is stable, and prints the result. Prefixing a line with "tree "
// renders the rewritten term as a tree on the terminal.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to TREWL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	simplifier := algebra.Simplifier()
	repl, err := readline.New("trewl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		asTree := false
		if strings.HasPrefix(line, "tree ") {
			asTree = true
			line = strings.TrimPrefix(line, "tree ")
		}
		eval(line, simplifier, asTree)
	}
	println("Good bye!")
}

// eval parses a single input line, rewrites it and prints the outcome.
func eval(line string, rw rewrite.Rewriter, asTree bool) {
	e, err := algebra.Parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	result, ok := rw.Rewrite(e)
	if !ok {
		// cannot happen for the standard simplifier, which is total
		pterm.Error.Println("no rule matched")
		return
	}
	if asTree {
		renderTree(result)
		return
	}
	pterm.Info.Println(result)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// renderTree displays a term as a tree on the terminal.
func renderTree(e treerex.Expr) {
	ll := leveledExpr(e, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledExpr(e treerex.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	if e.IsLeaf() {
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  exprText(e),
		})
		return ll
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  string(e.Operation()),
	})
	for _, arg := range e.Arguments() {
		ll = leveledExpr(arg, ll, level+1)
	}
	return ll
}

func exprText(e treerex.Expr) string {
	if t, ok := e.(*algebra.Term); ok {
		return t.String()
	}
	return "?"
}
