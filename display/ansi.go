package display

import (
	"bufio"
	"fmt"
	"io"

	"termpix/raster"
	"termpix/render"
)

const ansiReset = "\x1b[0m"

// WriteANSI writes buf as lines of text with 24-bit color escapes. Colors
// are only emitted when they change and every line ends with a reset.
func WriteANSI(w io.Writer, buf *render.Buffer) error {
	bw := bufio.NewWriter(w)
	for y := range buf.Height() {
		var fg, bg raster.Color
		first := true
		for _, c := range buf.Row(y) {
			if first || c.Fg != fg {
				writeSGR(bw, 38, c.Fg)
				fg = c.Fg
			}
			if first || c.Bg != bg {
				writeSGR(bw, 48, c.Bg)
				bg = c.Bg
			}
			first = false
			bw.WriteRune(c.Rune)
		}
		bw.WriteString(ansiReset)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write ANSI output: %w", err)
	}
	return nil
}

// writeSGR selects a foreground (38) or background (48) color. The reset
// codes are 39 and 49 respectively.
func writeSGR(w *bufio.Writer, base int, c raster.Color) {
	if c.IsReset() {
		fmt.Fprintf(w, "\x1b[%dm", base+1)
		return
	}
	fmt.Fprintf(w, "\x1b[%d;2;%d;%d;%dm", base, c.R, c.G, c.B)
}
