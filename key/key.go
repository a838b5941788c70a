// SPDX-License-Identifier: Unlicense OR MIT

/*
Package key defines the discrete key codes delivered to views.

Input arrives as at most one Code per frame. None means no input this
frame; Dismiss is reserved for closing the presented modal and never
reaches a modal's own key handler. All other codes are conventions the
bundled widgets respond to; applications map their physical buttons to
them and may define further codes from User upwards.
*/
package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Code identifies a discrete key event.
type Code int

const (
	// None is the sentinel for a frame without input.
	None Code = iota
	// Dismiss closes the presented modal.
	Dismiss
	Up
	Down
	Left
	Right
	Enter
	Back
	// User is the first code free for application use.
	User Code = 64
)

var names = map[Code]string{
	None:    "None",
	Dismiss: "Dismiss",
	Up:      "Up",
	Down:    "Down",
	Left:    "Left",
	Right:   "Right",
	Enter:   "Enter",
	Back:    "Back",
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	if c >= User {
		return "User+" + strconv.Itoa(int(c-User))
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Parse returns the Code named s, as printed by String. Matching is
// case insensitive.
func Parse(s string) (Code, error) {
	for c, n := range names {
		if strings.EqualFold(n, s) {
			return c, nil
		}
	}
	if rest, ok := strings.CutPrefix(s, "User+"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 0 {
			return User + Code(n), nil
		}
	}
	return None, fmt.Errorf("key: unknown key %q", s)
}

// Handler is implemented by views accepting key input.
type Handler interface {
	// HandleKey processes k and reports whether it was consumed.
	HandleKey(k Code) bool
}
