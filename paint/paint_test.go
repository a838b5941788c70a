// SPDX-License-Identifier: Unlicense OR MIT

package paint

import "testing"

func TestPolarity(t *testing.T) {
	if Normal.Ink() != White || Normal.Paper() != Black {
		t.Errorf("Normal: ink %v paper %v", Normal.Ink(), Normal.Paper())
	}
	if Inverted.Ink() != Black || Inverted.Paper() != White {
		t.Errorf("Inverted: ink %v paper %v", Inverted.Ink(), Inverted.Paper())
	}
	if Transparent.Invert() != Transparent {
		t.Errorf("Transparent must not invert")
	}
}
