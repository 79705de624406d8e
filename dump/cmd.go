package dump

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"termpix/config"
	"termpix/display"
	"termpix/parallel"
	"termpix/raster"
	"termpix/render"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

type CLICmd struct {
	Files  []string `arg:"" help:"Image files to render"`
	Width  int      `help:"Output width in cells. Defaults to the terminal width, capped at the image width"`
	Height int      `help:"Output height in cells. Defaults to keeping the aspect ratio of the image"`
	config.View
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	}
	return c.View.Parse()
}

func (c *CLICmd) Run(pool *parallel.Pool, out io.Writer) error {
	limit := terminalWidth(out)
	results := make([]bytes.Buffer, len(c.Files))

	var renderedCount, errCount atomic.Uint64
	for i, name := range c.Files {
		pool.Go(func() {
			logger := slog.Default().With("file", name)

			img, err := raster.Open(name)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not load image", "error", err)
				return
			}

			view := c.Apply(img)
			width, height := outputSize(view.Region(), c.Width, c.Height, limit)
			logger.Debug("rendering", "width", width, "height", height, "fit", view.Fit())

			buf := render.NewBuffer(width, height)
			render.Render(view, buf.Bounds(), buf)
			if err := display.WriteANSI(&results[i], buf); err != nil {
				errCount.Add(1)
				logger.Error("could not encode image", "error", err)
				return
			}
			renderedCount.Add(1)
		})
	}
	pool.Close()

	for i := range results {
		if _, err := results[i].WriteTo(out); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}

	rendered := renderedCount.Load()
	errors := errCount.Load()
	slog.Debug("stats", "rendered", rendered, "errors", errors, "total", rendered+errors)

	if errors > 0 {
		return fmt.Errorf("error rendering %d files", errors)
	}
	return nil
}

// outputSize picks the cell size to render region at. A zero width means
// the region's own width, capped at limit; a zero height keeps the aspect
// ratio of the region.
func outputSize(region raster.Region, width, height, limit int) (int, int) {
	if width == 0 {
		width = min(region.CellWidth(), limit)
	}
	if height == 0 && region.Width > 0 {
		height = max((region.Height*width+2*region.Width-1)/(2*region.Width), 1)
	}
	return width, height
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
