// SPDX-License-Identifier: Unlicense OR MIT

package display

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Framebuffer is a memory mapped Linux framebuffer device. Pixels set
// through SetPixel are visible immediately.
type Framebuffer struct {
	fd   int
	mem  []byte
	info fbInfo
}

// OpenFramebuffer maps the framebuffer device at dev, such as
// /dev/fb0.
func OpenFramebuffer(dev string) (*Framebuffer, error) {
	info, err := readFBInfo(os.DirFS("/sys/class/graphics"), filepath.Base(dev))
	if err != nil {
		return nil, err
	}
	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("display: open %s: %w", dev, err)
	}
	mem, err := unix.Mmap(fd, 0, info.size(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("display: mmap %s: %w", dev, err)
	}
	return &Framebuffer{fd: fd, mem: mem, info: info}, nil
}

func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.info.Width), int16(f.info.Height)
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	putPixel(f.mem, f.info, int(x), int(y), (c.R|c.G|c.B) >= 0x80)
}

// Display is a no-op: the mapping is shared with the device.
func (f *Framebuffer) Display() error {
	return nil
}

// Close unmaps and closes the device.
func (f *Framebuffer) Close() error {
	if f.mem == nil {
		return nil
	}
	err := unix.Munmap(f.mem)
	f.mem = nil
	if cerr := unix.Close(f.fd); err == nil {
		err = cerr
	}
	return err
}
