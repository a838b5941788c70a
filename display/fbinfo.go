// SPDX-License-Identifier: Unlicense OR MIT

package display

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// fbInfo describes the memory layout of a framebuffer.
type fbInfo struct {
	Width, Height int
	// Stride is the length of a row in bytes.
	Stride int
	// Depth is the number of bits per pixel.
	Depth int
}

func (i fbInfo) size() int {
	return i.Stride * i.Height
}

// readFBInfo reads the layout of the framebuffer name from a sysfs
// graphics class directory such as /sys/class/graphics.
func readFBInfo(fsys fs.FS, name string) (fbInfo, error) {
	read := func(attr string) (string, error) {
		b, err := fs.ReadFile(fsys, path.Join(name, attr))
		if err != nil {
			return "", fmt.Errorf("display: %s: %w", name, err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	var info fbInfo
	vs, err := read("virtual_size")
	if err != nil {
		return info, err
	}
	ws, hs, ok := strings.Cut(vs, ",")
	if !ok {
		return info, fmt.Errorf("display: %s: malformed virtual_size %q", name, vs)
	}
	for _, f := range []struct {
		dst *int
		s   string
	}{{&info.Width, ws}, {&info.Height, hs}} {
		if *f.dst, err = strconv.Atoi(f.s); err != nil {
			return info, fmt.Errorf("display: %s: virtual_size: %w", name, err)
		}
	}
	for _, f := range []struct {
		dst  *int
		attr string
	}{{&info.Depth, "bits_per_pixel"}, {&info.Stride, "stride"}} {
		s, err := read(f.attr)
		if err != nil {
			return info, err
		}
		if *f.dst, err = strconv.Atoi(s); err != nil {
			return info, fmt.Errorf("display: %s: %s: %w", name, f.attr, err)
		}
	}
	switch info.Depth {
	case 1, 8, 16, 24, 32:
	default:
		return info, fmt.Errorf("display: %s: unsupported depth %d", name, info.Depth)
	}
	if info.Width <= 0 || info.Height <= 0 || info.Stride*8 < info.Width*info.Depth {
		return info, fmt.Errorf("display: %s: invalid geometry %dx%d stride %d", name, info.Width, info.Height, info.Stride)
	}
	return info, nil
}

// putPixel writes a lit or dark pixel at (x, y) of a framebuffer with
// layout info. Monochrome framebuffers store pixels most significant bit
// first.
func putPixel(mem []byte, info fbInfo, x, y int, lit bool) {
	if x < 0 || y < 0 || x >= info.Width || y >= info.Height {
		return
	}
	row := y * info.Stride
	if info.Depth == 1 {
		i, mask := row+x/8, byte(0x80)>>uint(x%8)
		if lit {
			mem[i] |= mask
		} else {
			mem[i] &^= mask
		}
		return
	}
	n := info.Depth / 8
	v := byte(0)
	if lit {
		v = 0xff
	}
	px := mem[row+x*n : row+(x+1)*n]
	for i := range px {
		px[i] = v
	}
}
