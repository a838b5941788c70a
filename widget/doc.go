// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the interactive controls of a monochrome
// interface: selection lists, icon carousels and modal dialogs.
//
// Widgets keep their persistent values in small state holders (Bool,
// Enum, Flags, Float) shared by the caller, so that a page can read the
// value a control changed without a reference to the control itself.
package widget
