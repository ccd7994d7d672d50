// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

// Program branchfreq reports the byte-frequency profile of a JSON file and
// what it implies for the hot branches of the flatjson parser: how often the
// whitespace-skipping loop spins, how the value-dispatch branches should be
// ordered, and how rarely the string fast path will bail out to the escape
// decoder.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/advxolltm/flatjson/internal/filebuf"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s file.json\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	buf, err := filebuf.Load(path)
	if err != nil {
		return err
	}
	defer buf.Close()

	var counts [256]uint64
	for _, b := range buf.Data {
		counts[b]++
	}
	total := uint64(len(buf.Data))
	if total == 0 {
		return fmt.Errorf("%q is empty", path)
	}
	report(counts, total)
	return nil
}

// Bytes that steer parser branches, with the branch each one feeds.
var important = []struct {
	ch     byte
	name   string
	impact string
}{
	{' ', "SPACE", "whitespace skip loop"},
	{'\n', "NEWLINE", "whitespace skip loop"},
	{'\t', "TAB", "whitespace skip loop"},
	{'\r', "CR", "whitespace skip loop"},
	{'"', "QUOTE", "string start (hottest)"},
	{'{', "OPEN BRACE", "object start"},
	{'}', "CLOSE BRACE", "object end"},
	{'[', "OPEN BRACKET", "array start"},
	{']', "CLOSE BRACKET", "array end"},
	{':', "COLON", "key-value separator"},
	{',', "COMMA", "item separator"},
	{'t', "T (true)", "keyword check"},
	{'f', "F (false)", "keyword check"},
	{'n', "N (null)", "keyword check"},
	{'\\', "BACKSLASH", "escape sequence (rare)"},
	{'-', "MINUS", "number start"},
}

func report(counts [256]uint64, total uint64) {
	pct := func(n uint64) float64 { return 100 * float64(n) / float64(total) }

	ws := counts[' '] + counts['\n'] + counts['\t'] + counts['\r']
	var digits uint64
	for ch := byte('0'); ch <= '9'; ch++ {
		digits += counts[ch]
	}

	fmt.Printf("Byte frequency profile: %d bytes total\n\n", total)

	fmt.Println("Key byte categories:")
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', tabwriter.AlignRight)
	category := func(name string, n uint64, note string) {
		fmt.Fprintf(tw, "  %s\t%d\t%6.2f%%\t  %s\n", name, n, pct(n), note)
	}
	category("whitespace", ws, "skipSpace iterations")
	category("quotes", counts['"'], "string parses")
	category("digits", digits, "number parses")
	category("braces {}", counts['{']+counts['}'], "objects")
	category("brackets []", counts['[']+counts[']'], "arrays")
	category("backslash", counts['\\'], "escape slow path")
	tw.Flush()

	fmt.Println("\nDetailed breakdown:")
	tw = tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  byte\tcount\tpercent\tbranch impact")
	for _, im := range important {
		fmt.Fprintf(tw, "  %s\t%d\t%.2f%%\t%s\n", im.name, counts[im.ch], pct(counts[im.ch]), im.impact)
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		fmt.Fprintf(tw, "  %c\t%d\t%.2f%%\tnumber\n", ch, counts[ch], pct(counts[ch]))
	}
	tw.Flush()

	fmt.Println("\nValue dispatch order by observed frequency:")
	order := []struct {
		label string
		n     uint64
	}{
		{`" (string)`, counts['"']},
		{"digit or - (number)", digits + counts['-']},
		{"{ (object)", counts['{']},
		{"[ (array)", counts['[']},
		{"t/f/n (keyword)", counts['t'] + counts['f'] + counts['n']},
	}
	for i, o := range order {
		fmt.Printf("  %d. %-20s %6.2f%%\n", i+1, o.label, pct(o.n))
	}

	if counts['\\'] > 0 {
		fmt.Printf("\nEscapes: %.4f%% of bytes (1 in %d); the zero-copy string fast path dominates.\n",
			pct(counts['\\']), total/counts['\\'])
	} else {
		fmt.Println("\nEscapes: none; every string takes the zero-copy fast path.")
	}
}
