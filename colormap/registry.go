package colormap

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultName is the colormap used when none is requested.
const DefaultName = "greys"

// ErrNotFound wraps lookups of unregistered colormap names.
var ErrNotFound = fmt.Errorf("colormap: not found")

// reversedSuffix marks the mirrored variant of a registered colormap.
const reversedSuffix = "_r"

var registry = map[string]*Palette{
	"greys": MustPalette(append(append([]Color256{16},
		seq(232, 249)...), 251, 253, 255)),
	"plasma": MustPalette([]Color256{
		16, 232, 17, 18, 19, 20,
		21, 57, 56, 55, 91, 127,
		163, 169, 168, 167, 166, 172,
		208, 214, 220, 221,
	}),
	"viridis": MustPalette([]Color256{
		16, 232, 17, 18, 19, 20,
		26, 25, 24, 23, 22, 28,
		34, 40, 46, 82, 118, 154,
		148, 184, 220, 221,
	}),
	"blues": MustPalette([]Color256{
		16, 232, 17, 18, 19, 20,
		21, 27, 26, 25, 24, 30,
		37, 44, 51, 87, 123, 159,
		195, 231, 255,
	}),
	"bluered": MustPalette([]Color256{
		21, 27, 33, 39, 45, 51,
		87, 123, 159, 195, 231, 255,
		231, 224, 217, 210, 203, 196,
		160, 124, 88, 52,
	}),
	"jet": MustPalette([]Color256{
		17, 18, 19, 20, 25, 31, 37,
		43, 49, 84, 83, 155,
		154, 148, 142, 136, 166,
		160, 124, 88, 52,
	}),
}

func seq(from, to Color256) []Color256 {
	out := make([]Color256, 0, int(to-from)+1)
	for c := from; c <= to; c++ {
		out = append(out, c)
	}
	return out
}

// Load returns a registered palette by name. Appending "_r" to any
// registered name yields its reversed variant. An empty name loads the
// default colormap.
func Load(name string) (*Palette, error) {
	if name == "" {
		name = DefaultName
	}
	if p, ok := registry[name]; ok {
		return p, nil
	}
	if base, ok := strings.CutSuffix(name, reversedSuffix); ok {
		if p, found := registry[base]; found {
			return p.Inverted(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(Names(), ", "))
}

// Names lists all loadable colormap names, reversed variants included.
func Names() []string {
	names := make([]string, 0, 2*len(registry))
	for name := range registry {
		names = append(names, name, name+reversedSuffix)
	}
	sort.Strings(names)
	return names
}
