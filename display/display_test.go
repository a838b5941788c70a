// SPDX-License-Identifier: Unlicense OR MIT

package display

import (
	"errors"
	"image/color"
	"testing"
	"testing/fstest"

	"monoui.org/raster"
)

type panel struct {
	w, h  int16
	pix   map[[2]int16]bool
	shows int
	err   error
}

func (p *panel) Size() (int16, int16) { return p.w, p.h }

func (p *panel) SetPixel(x, y int16, c color.RGBA) {
	p.pix[[2]int16{x, y}] = c.R == 0xff
}

func (p *panel) Display() error {
	p.shows++
	return p.err
}

func TestFlush(t *testing.T) {
	bm := raster.NewBitmap(8, 4)
	bm.Put(1, 1, true)
	bm.Put(7, 3, true)
	p := &panel{w: 4, h: 8, pix: make(map[[2]int16]bool)}
	if err := Flush(p, bm); err != nil {
		t.Fatal(err)
	}
	if len(p.pix) != 16 {
		t.Errorf("wrote %d pixels, want the 4x4 overlap", len(p.pix))
	}
	if !p.pix[[2]int16{1, 1}] || p.pix[[2]int16{0, 0}] {
		t.Errorf("pixels not copied: %v", p.pix)
	}
	if p.shows != 1 {
		t.Errorf("Display called %d times", p.shows)
	}
	p.err = errors.New("i2c: nack")
	if err := Flush(p, bm); !errors.Is(err, p.err) {
		t.Errorf("Flush error: got %v", err)
	}
}

func TestReadFBInfo(t *testing.T) {
	fsys := fstest.MapFS{
		"fb0/virtual_size":   {Data: []byte("128,64\n")},
		"fb0/bits_per_pixel": {Data: []byte("1\n")},
		"fb0/stride":         {Data: []byte("16\n")},
		"fb1/virtual_size":   {Data: []byte("128x64\n")},
		"fb2/virtual_size":   {Data: []byte("320,240\n")},
		"fb2/bits_per_pixel": {Data: []byte("12\n")},
		"fb2/stride":         {Data: []byte("480\n")},
		"fb3/virtual_size":   {Data: []byte("320,240\n")},
		"fb3/bits_per_pixel": {Data: []byte("16\n")},
		"fb3/stride":         {Data: []byte("320\n")},
	}
	info, err := readFBInfo(fsys, "fb0")
	if err != nil {
		t.Fatal(err)
	}
	if want := (fbInfo{Width: 128, Height: 64, Stride: 16, Depth: 1}); info != want {
		t.Errorf("got %+v, want %+v", info, want)
	}
	if info.size() != 1024 {
		t.Errorf("size: got %d", info.size())
	}
	for _, name := range []string{"fb1", "fb2", "fb3", "fb9"} {
		if _, err := readFBInfo(fsys, name); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestPutPixel(t *testing.T) {
	mono := fbInfo{Width: 16, Height: 2, Stride: 2, Depth: 1}
	mem := make([]byte, mono.size())
	putPixel(mem, mono, 9, 1, true)
	putPixel(mem, mono, 16, 0, true)
	if mem[3] != 0x40 || mem[0]|mem[1]|mem[2] != 0 {
		t.Errorf("mono: got % x", mem)
	}
	putPixel(mem, mono, 9, 1, false)
	if mem[3] != 0 {
		t.Errorf("mono clear: got % x", mem)
	}

	rgb := fbInfo{Width: 2, Height: 2, Stride: 8, Depth: 16}
	mem = make([]byte, rgb.size())
	putPixel(mem, rgb, 1, 1, true)
	if mem[10] != 0xff || mem[11] != 0xff || mem[8] != 0 || mem[12] != 0 {
		t.Errorf("rgb565: got % x", mem)
	}
}
