// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	for _, c := range []Code{None, Dismiss, Up, Down, Left, Right, Enter, Back, User, User + 7} {
		got, err := Parse(c.String())
		if err != nil {
			t.Errorf("Parse(%q): %v", c.String(), err)
			continue
		}
		if got != c {
			t.Errorf("Parse(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "Sideways", "User+", "User+-1"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded", s)
		}
	}
	if c, err := Parse("enter"); err != nil || c != Enter {
		t.Errorf("Parse is case sensitive: %v, %v", c, err)
	}
}
