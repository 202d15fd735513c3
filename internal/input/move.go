package input

import (
	"image"
	"unicode"
)

var viDirs = map[rune]image.Point{
	'h': {-1, 0},
	'l': {1, 0},
	'k': {0, -1},
	'j': {0, 1},
	'y': {-1, -1},
	'u': {1, -1},
	'b': {-1, 1},
	'n': {1, 1},
}

// ParseMove parses an X/Y move from the given rune using the classic
// extended-vi keybindings of h/j/k/l and y/u/b/n. If extra is non-zero,
// capitalized moves are parsed as a componentwise multiple of it, so that
// e.g. 'L' can jump a whole box width.
//
// Returns the parsed delta and true if the rune was recognized, zero point
// and false otherwise.
func ParseMove(ch rune, extra image.Point) (image.Point, bool) {
	if pt, ok := viDirs[ch]; ok {
		return pt, true
	}
	if extra == (image.Point{}) || !unicode.IsUpper(ch) {
		return image.Point{}, false
	}
	if pt, ok := viDirs[unicode.ToLower(ch)]; ok {
		return image.Pt(extra.X*pt.X, extra.Y*pt.Y), true
	}
	return image.Point{}, false
}
