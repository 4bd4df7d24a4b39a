package pattern

import "sort"

var builtins = map[string]string{
	"block": `
OO
OO`,
	"blinker": `
OOO`,
	"glider": `
.O.
..O
OOO`,
	"r-pentomino": `
.OO
OO.
.O.`,
	"acorn": `
.O.....
...O...
OO..OOO`,
	"gosper": `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`,
}

// Builtin returns one of the bundled patterns.
func Builtin(name string) (*Pattern, bool) {
	src, ok := builtins[name]
	if !ok {
		return nil, false
	}
	p, err := ParseString(trimLeadingNewline(src))
	if err != nil {
		panic("pattern: bad builtin " + name + ": " + err.Error())
	}
	p.Name = name
	return p, true
}

// Names lists the bundled patterns.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func trimLeadingNewline(s string) string {
	if len(s) > 0 && s[0] == '\n' {
		return s[1:]
	}
	return s
}
