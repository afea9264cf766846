package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/lkael/arbor/internal/store"
)

// Globals holds flags shared by every command.
type Globals struct {
	DB    string `help:"Path to the SQLite database." placeholder:"PATH"`
	Debug bool   `help:"Enable debug logging."`
}

// CLI is the top-level command tree.
type CLI struct {
	Globals

	Init   InitCmd   `cmd:"" help:"Create the database and its root category."`
	Add    AddCmd    `cmd:"" help:"Add a child category under a parent path."`
	Mv     MvCmd     `cmd:"" help:"Move a subtree under a new parent."`
	Rm     RmCmd     `cmd:"" help:"Delete a subtree and compact sibling paths."`
	Show   ShowCmd   `cmd:"" help:"Print the category tree."`
	Import ImportCmd `cmd:"" help:"Replace the tree with a YAML outline."`
	Export ExportCmd `cmd:"" help:"Write the tree as a YAML outline to stdout."`
	Serve  ServeCmd  `cmd:"" help:"Serve the tree as cached JSON over local HTTP."`
}

// defaultDBPath returns the database location used when --db is not given.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "arbor.db"
	}
	return filepath.Join(home, ".local", "share", "arbor", "arbor.db")
}

// openStore opens the configured database, creating its directory on demand.
func openStore(g *Globals) (*store.Store, error) {
	path := g.DB
	if path == "" {
		path = defaultDBPath()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	return store.Open(store.Config{DBPath: path})
}

func main() {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("arbor"),
		kong.Description("Materialized-path category trees in SQLite."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			os.Exit(code)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbor: %v\n", err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	setupLogger(cli.Debug)

	ctx.Bind(&cli.Globals)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
