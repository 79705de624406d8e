// Package config holds the command line options shared by the commands.
package config

import (
	"fmt"

	"termpix/raster"
)

// View selects how an image is viewed. It is embedded into the commands
// that display images; Parse must run before Apply.
type View struct {
	Fit    string `help:"How to fit the image into the display area (zoom, stretch)" enum:"zoom,stretch" default:"zoom"`
	Bg     string `help:"Background color for transparent pixels, as #RGB or #RRGGBB" default:"#000000" env:"TERMPIX_BG"`
	Region []int  `help:"Only show the pixels in X,Y,WIDTH,HEIGHT" sep:"," placeholder:"X,Y,W,H"`

	FitMode raster.Fit     `kong:"-"`
	BgColor raster.BgColor `kong:"-"`
}

func (v *View) Parse() error {
	var err error
	if v.FitMode, err = raster.ParseFit(v.Fit); err != nil {
		return err
	}
	if v.BgColor, err = raster.ParseBgColor(v.Bg); err != nil {
		return err
	}

	switch {
	case len(v.Region) == 0:
	case len(v.Region) != 4:
		return fmt.Errorf("invalid region %v, should be X,Y,WIDTH,HEIGHT", v.Region)
	default:
		for _, n := range v.Region {
			if n < 0 {
				return fmt.Errorf("invalid region %v, values cannot be negative", v.Region)
			}
		}
	}
	return nil
}

// Apply builds the configured view of img.
func (v *View) Apply(img *raster.Image) raster.View {
	view := img.View().WithFit(v.FitMode).WithBgColor(v.BgColor)
	if len(v.Region) == 4 {
		view.SetRegion(raster.Region{
			X:      v.Region[0],
			Y:      v.Region[1],
			Width:  v.Region[2],
			Height: v.Region[3],
		})
	}
	return view
}
