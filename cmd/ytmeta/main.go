package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"ytmeta/config"
	"ytmeta/table"
	"ytmeta/youtube"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ytmeta", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "markdown", "output table format: markdown or grid")
	columns := fs.String("columns", "", "comma-separated column keys (default: all)")
	// Flags may come before, after or between video IDs, but flag.Parse
	// stops at the first positional. Re-parse the remainder after each
	// positional so "ytmeta X --format grid" selects the grid format
	// instead of requesting "--format" and "grid" as video IDs.
	var raw []string
	for {
		if err := fs.Parse(args); err != nil {
			return 2
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		raw = append(raw, args[0])
		args = args[1:]
	}
	if *format != "markdown" && *format != "grid" {
		fmt.Fprintf(stderr, "ytmeta: invalid format %q (want markdown or grid)\n", *format)
		return 2
	}
	if len(raw) == 0 {
		// Prompt goes to stderr so stdout stays table-only.
		fmt.Fprint(stderr, "Enter video ID(s), comma- or space-separated: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(stderr, "ytmeta: no video IDs provided")
			return 1
		}
		raw = []string{strings.TrimSpace(line)}
	}

	ids := youtube.NormalizeIDs(raw)
	if len(ids) == 0 {
		fmt.Fprintln(stderr, "ytmeta: no video IDs provided")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ytmeta: %v\n", err)
		return 1
	}

	items, err := youtube.NewFetcher(cfg).FetchVideos(context.Background(), ids)
	if err != nil {
		fmt.Fprintf(stderr, "ytmeta: %v\n", err)
		return 1
	}

	for _, id := range youtube.MissingIDs(ids, items) {
		fmt.Fprintf(stderr, "ytmeta: not found: %s\n", id)
	}

	cols := table.SelectColumns(youtube.NormalizeIDs([]string{*columns}))
	rows := table.BuildRows(items, cols)
	if len(rows) == 0 {
		return 1
	}

	var rendered string
	if *format == "grid" {
		rendered = table.RenderGrid(table.Labels(cols), rows)
	} else {
		rendered = table.RenderMarkdown(table.Labels(cols), rows)
	}
	fmt.Fprintln(stdout, rendered)
	return 0
}
