package engine

import (
	"fmt"
	"strings"
)

// Kind identifies a sorting algorithm.
type Kind int

const (
	Bubble Kind = iota
	Quick
	Cocktail
	Shell
	Heap
	Merge
	Selection
	Insertion
	Gnome
)

// Kinds lists every algorithm in menu order.
var Kinds = []Kind{Bubble, Quick, Cocktail, Shell, Heap, Merge, Selection, Insertion, Gnome}

var kindNames = map[Kind]string{
	Bubble:    "bubble",
	Quick:     "quick",
	Cocktail:  "cocktail",
	Shell:     "shell",
	Heap:      "heap",
	Merge:     "merge",
	Selection: "selection",
	Insertion: "insertion",
	Gnome:     "gnome",
}

var kindTitles = map[Kind]string{
	Bubble:    "Bubble Sort",
	Quick:     "Quick Sort",
	Cocktail:  "Cocktail Sort",
	Shell:     "Shell Sort",
	Heap:      "Heap Sort",
	Merge:     "Merge Sort",
	Selection: "Selection Sort",
	Insertion: "Insertion Sort",
	Gnome:     "Gnome Sort",
}

// String returns the short lowercase name used in config files and flags.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Title returns the display name, e.g. "Bubble Sort".
func (k Kind) Title() string {
	if title, ok := kindTitles[k]; ok {
		return title
	}
	return "Unknown Sort"
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind converts a name such as "bubble" or "Bubble Sort" into a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, " sort")
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown algorithm %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
