// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"tinygo.org/x/drivers"

	"monoui.org/display"
	"monoui.org/key"
	"monoui.org/paint"
	"monoui.org/raster"
	"monoui.org/text"
)

// panelDriver draws frames into a bitmap, flushes them to a display
// and takes keys, one name per line, from a reader.
type panelDriver struct {
	panel  drivers.Displayer
	bitmap *raster.Bitmap
	canvas *raster.Canvas
	keys   chan key.Code
}

func newPanelDriver(panel drivers.Displayer, w, h int, face text.Face) *panelDriver {
	bm := raster.NewBitmap(w, h)
	return &panelDriver{
		panel:  panel,
		bitmap: bm,
		canvas: raster.NewCanvas(bm, face),
		keys:   make(chan key.Code, 16),
	}
}

// readKeys feeds key names read from r to the driver until r is
// exhausted or ctx is done. Unknown names are logged and skipped.
func (d *panelDriver) readKeys(ctx context.Context, r io.Reader, log *slog.Logger) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		k, err := key.Parse(name)
		if err != nil {
			log.Warn("input", "err", err)
			continue
		}
		select {
		case d.keys <- k:
		case <-ctx.Done():
			return
		}
	}
}

func (d *panelDriver) Canvas() paint.Canvas {
	return d.canvas
}

func (d *panelDriver) Poll() key.Code {
	select {
	case k := <-d.keys:
		return k
	default:
		return key.None
	}
}

func (d *panelDriver) Flush() error {
	return display.Flush(d.panel, d.bitmap)
}
