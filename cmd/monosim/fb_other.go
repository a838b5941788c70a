// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux

package main

import (
	"errors"
	"io"

	"tinygo.org/x/drivers"
)

func openPanel(dev string) (drivers.Displayer, io.Closer, error) {
	return nil, nil, errors.New("framebuffer displays are only supported on Linux")
}
