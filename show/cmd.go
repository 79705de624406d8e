package show

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"termpix/config"
	"termpix/display"
	"termpix/raster"
	"termpix/render"
)

type CLICmd struct {
	File string `arg:"" help:"Image file to display" type:"existingfile"`
	config.View
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	return c.View.Parse()
}

func (c *CLICmd) Run() error {
	img, err := raster.Open(c.File)
	if err != nil {
		return err
	}
	view := c.Apply(img)
	slog.Info("showing", "file", c.File, "width", img.Width(), "height", img.Height(),
		"region", view.Region(), "fit", view.Fit())

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("could not initialize terminal: %w", err)
	}
	defer s.Fini()

	return run(display.NewScreen(s), view)
}

// run draws the view full screen until the user quits or the screen is
// finalized.
func run(screen display.Screen, view raster.View) error {
	screen.HideCursor()
	dirty := true
	for {
		if dirty {
			render.Render(view, screen.Area(), screen)
			screen.Show()
			dirty = false
		}

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			dirty = true
		case *tcell.EventKey:
			switch handleKey(ev, &view) {
			case actionQuit:
				return nil
			case actionRedraw:
				dirty = true
			}
		}
	}
}

type keyAction int

const (
	actionNone keyAction = iota
	actionQuit
	actionRedraw
)

func handleKey(ev *tcell.EventKey, view *raster.View) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case 'f', 'F':
			if view.Fit() == raster.Zoom {
				view.SetFit(raster.Stretch)
			} else {
				view.SetFit(raster.Zoom)
			}
			return actionRedraw
		}
	}
	return actionNone
}
