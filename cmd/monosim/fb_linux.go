// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"io"

	"tinygo.org/x/drivers"

	"monoui.org/display"
)

func openPanel(dev string) (drivers.Displayer, io.Closer, error) {
	fb, err := display.OpenFramebuffer(dev)
	if err != nil {
		return nil, nil, err
	}
	return fb, fb, nil
}
