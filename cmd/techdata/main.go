package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/batch"
	"github.com/fwojciec/techdata/goquery"
	tdslog "github.com/fwojciec/techdata/slog"
	"github.com/fwojciec/techdata/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ItemService techdata.ItemService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("techdata"),
		kong.Description("Extract structured technical data from product description markup."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'techdata --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extracting := kongCtx.Command() == "extract <dir>"

	// Wire the extraction engine
	engine := goquery.NewExtractor()
	events := tdslog.NewEventLogger(deps.Logger)
	if extracting && cli.Verbose {
		deps.Stats = &techdata.Stats{}
		engine.Events = func(ev techdata.Event) {
			deps.Stats.Observe(ev)
			events(ev)
		}
	} else {
		engine.Events = events
	}
	deps.Extractor = tdslog.NewLoggingExtractor(engine, deps.Logger)

	// The extract command works on files only.
	if extracting {
		return kongCtx.Run(deps)
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TECHDATA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire storage services into dependencies
	m.ItemService = tdslog.NewLoggingItemService(sqlite.NewItemService(m.DB), deps.Logger)
	deps.Items = m.ItemService
	deps.Converter = &batch.Converter{
		Items:       deps.Items,
		Extractor:   deps.Extractor,
		Concurrency: batch.DefaultConcurrency,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TECHDATA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "techdata.db"
	}
	dir := filepath.Join(home, ".techdata")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "techdata.db")
}
