// SPDX-License-Identifier: Unlicense OR MIT

/*
Package display transfers rendered frames to physical displays.

Any tinygo.org/x/drivers Displayer can receive a frame through Flush,
which covers the SPI and I2C panels supported by the tinygo drivers. On
Linux, OpenFramebuffer maps a framebuffer device, exposing it as a
Displayer as well.
*/
package display

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"

	"monoui.org/raster"
)

var (
	on  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	off = color.RGBA{A: 0xff}
)

// Flush copies src to the top left corner of d and calls its Display
// method. Pixels outside the overlap of both sizes are skipped.
func Flush(d drivers.Displayer, src *raster.Bitmap) error {
	dw, dh := d.Size()
	sz := src.Rect.Size()
	w, h := min(int(dw), sz.X), min(int(dh), sz.Y)
	for y := range h {
		for x := range w {
			c := off
			if src.Pixel(src.Rect.Min.X+x, src.Rect.Min.Y+y) {
				c = on
			}
			d.SetPixel(int16(x), int16(y), c)
		}
	}
	if err := d.Display(); err != nil {
		return fmt.Errorf("display: flush: %w", err)
	}
	return nil
}
