package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Items     techdata.ItemService
	Extractor techdata.Extractor
	Converter *batch.Converter

	// Stats collects engine events of the extract command.
	Stats *techdata.Stats
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction events to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract technical data from fragment files"`
	Import  ImportCmd  `cmd:"" help:"Store fragment files as a catalog item"`
	Convert ConvertCmd `cmd:"" help:"Extract technical data for stored items"`
	Show    ShowCmd    `cmd:"" help:"Show technical data of an item"`
	Export  ExportCmd  `cmd:"" help:"Write technical data of all items to a directory"`
	List    ListCmd    `cmd:"" help:"List stored items"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an item and its fragments"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Dir    string `arg:"" type:"existingdir" help:"Directory of .html fragment files"`
	Format string `short:"f" enum:"json,markdown,xml" default:"json" help:"Output format (json, markdown, xml)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name  string `arg:"" help:"Item name"`
	Dir   string `arg:"" type:"existingdir" help:"Directory of .html fragment files"`
	Force bool   `help:"Replace an existing item with the same name"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Name        string `short:"n" help:"Only convert the named item"`
	Force       bool   `help:"Convert items whose fragments have not changed"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name   string `arg:"" help:"Item name"`
	Format string `short:"f" enum:"json,markdown,xml" default:"markdown" help:"Output format (json, markdown, xml)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" help:"Output directory (replaced atomically)"`
	Format string `short:"f" enum:"json,markdown,xml" default:"markdown" help:"Output format (json, markdown, xml)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Item name"`
	Force bool   `help:"Confirm deletion"`
}
