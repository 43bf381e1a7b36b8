// Package meme maps the closed set of supported meme layouts onto the
// compositing engine: which template asset each kind uses, where the avatar
// lands on it, and whether the result is a still PNG or an animated GIF.
package meme

import "fmt"

// Kind identifies one supported meme layout.
type Kind int

const (
	// Enter places a round avatar walking in through the template doorway.
	Enter Kind = iota

	// Exit is the mirror scene of Enter on its own template.
	Exit

	// Spin composites the round avatar rotating through a full turn as an
	// infinitely looping GIF.
	Spin
)

// String returns the kind's wire name, the same string ParseKind accepts.
func (k Kind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	case Spin:
		return "spin"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// UnsupportedKindError reports a kind name outside the supported set.
type UnsupportedKindError struct {
	Name string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported meme kind %q", e.Name)
}

// ParseKind resolves a kind by name. Unknown names yield an
// *UnsupportedKindError; there is no fallback kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "enter":
		return Enter, nil
	case "exit":
		return Exit, nil
	case "spin":
		return Spin, nil
	}
	return 0, &UnsupportedKindError{Name: name}
}

// Asset returns the template file name for the kind, resolved by the asset
// library against the chosen size variant.
func (k Kind) Asset() string { return k.layout().asset }

// Animated reports whether the kind renders to an animated GIF rather than
// a still PNG.
func (k Kind) Animated() bool { return k == Spin }

// layout holds a kind's placement constants at the Large (1000px template)
// scale. Small-variant renders divide every value by 4.
type layout struct {
	asset      string
	avatarX    int
	avatarY    int
	avatarEdge int
	threshold  uint8
}

func (k Kind) layout() layout {
	switch k {
	case Enter:
		return layout{asset: "enter.png", avatarX: 35, avatarY: 397, avatarEdge: 603, threshold: 128}
	case Exit:
		return layout{asset: "exit.png", avatarX: 35, avatarY: 397, avatarEdge: 603, threshold: 128}
	case Spin:
		return layout{asset: "spin.png", avatarX: 190, avatarY: 190, avatarEdge: 620, threshold: 128}
	}
	return layout{}
}
