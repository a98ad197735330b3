// Package measure converts text into rendered sizes.
//
// Layout code depends only on the [Device] interface. Three backends are
// provided:
//
//   - [Monospace] - every character is one fixed unit wide and each line one
//     unit high; deterministic and used as the reference behavior
//   - [Monospace] with Wide set - East Asian wide and fullwidth characters
//     take two units
//   - [Face] - measures with a golang.org/x/image/font face
//   - [Canvas] - measures on a github.com/fogleman/gg context, optionally with
//     a TrueType font file
package measure

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabgrid/model"
)

// DefaultUnit is the cell size of the reference monospace device.
const DefaultUnit = 20

// Device converts a string to its rendered width and height.
type Device interface {
	MeasureText(text string) model.Size
}

// DeviceFunc adapts a function to the Device interface.
type DeviceFunc func(text string) model.Size

// MeasureText calls f(text).
func (f DeviceFunc) MeasureText(text string) model.Size {
	return f(text)
}

// Backend names accepted by New.
const (
	BackendMonospace = "monospace"
	BackendWide      = "wide"
	BackendFace      = "face"
	BackendCanvas    = "canvas"
)

// New returns the device registered under name. unit applies to the
// monospace backends and is ignored by the face and canvas backends, which
// use their built-in bitmap face.
func New(name string, unit float64) (Device, error) {
	switch name {
	case "", BackendMonospace:
		return NewMonospace(unit), nil
	case BackendWide:
		m := NewMonospace(unit)
		m.Wide = true
		return m, nil
	case BackendFace:
		return NewFace(nil), nil
	case BackendCanvas:
		return NewCanvas("", 0)
	}
	return nil, fmt.Errorf("unknown measurement backend %q", name)
}

// lines splits text on literal newlines. An empty string is one empty line.
func lines(text string) []string {
	return strings.Split(text, "\n")
}
