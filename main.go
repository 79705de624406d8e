package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"termpix/dump"
	"termpix/parallel"
	"termpix/show"
)

type cli struct {
	Workers int  `help:"Number of images decoded in parallel. 0 uses one per CPU" default:"0"`
	Verbose bool `short:"v" help:"Log debug messages"`

	Show show.CLICmd `cmd:"" default:"withargs" help:"Display an image full screen (q to quit, f to toggle fit)"`
	Dump dump.CLICmd `cmd:"" help:"Print images as ANSI text"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("termpix"),
		kong.Description("Render images on the terminal with half block characters."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(pool)
	pool.Close()
	kctx.FatalIfErrorf(err)
}
