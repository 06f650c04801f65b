package rewrite

import "strings"

// indentUnit is the fixed indentation width one block level occupies.
const indentUnit = 4

// Every pass before this one opens blocks with a trailing brace but never
// closes them. SynthesizeBlocks reconstructs block structure purely from
// leading-whitespace width, the only surviving signal of nesting after
// the line rewrites, and inserts every closing brace.
//
// Preconditions for brace balance: every block body is indented by exactly
// one multiple of indentUnit relative to its header, and no line mixes
// tabs with spaces. Misaligned input is accepted silently and
// desynchronizes the brace count; there is no validation pass.
func SynthesizeBlocks(src string) string {
	lines := strings.Split(src, "\n")
	widths := make([]int, len(lines))
	blank := make([]bool, len(lines))
	for i, line := range lines {
		widths[i] = leadingSpaces(line)
		blank[i] = strings.TrimSpace(line) == ""
	}

	events := closeEvents(widths, blank)
	out := make([]string, 0, len(lines)+len(events))
	e := 0
	for i, line := range lines {
		for e < len(events) && events[e].before == i {
			out = append(out, strings.Repeat(" ", events[e].width)+"}")
			e++
		}
		out = append(out, line)
	}
	for ; e < len(events); e++ {
		out = append(out, strings.Repeat(" ", events[e].width)+"}")
	}
	return strings.Join(out, "\n")
}

// closeEvent records one synthesized closing brace: inserted before line
// index before (len(widths) means after the last line) at the given
// indent width.
type closeEvent struct {
	before int
	width  int
}

// closeEvents computes every closing brace for a sequence of line
// indentation widths. Blank lines carry no indentation signal and must
// not perturb the running indent. Pure function; the core of the block
// synthesizer.
func closeEvents(widths []int, blank []bool) []closeEvent {
	var events []closeEvent
	current := 0
	for i, w := range widths {
		if blank[i] {
			continue
		}
		if w < current {
			for _, cw := range closeWidths(current, w) {
				events = append(events, closeEvent{before: i, width: cw})
			}
		}
		current = w
	}
	for _, cw := range flushWidths(current) {
		events = append(events, closeEvent{before: len(widths), width: cw})
	}
	return events
}

// closeWidths returns the indent widths of the braces closing a drop from
// one indentation level to a shallower one, innermost first. The level
// count is integer division by the indent unit; a difference that is not
// a multiple of the unit is accepted silently.
func closeWidths(from, to int) []int {
	levels := (from - to) / indentUnit
	widths := make([]int, 0, levels)
	for i := 0; i < levels; i++ {
		widths = append(widths, from-indentUnit*(i+1))
	}
	return widths
}

// flushWidths returns the indent widths closing every block still open at
// end of unit.
func flushWidths(from int) []int {
	var widths []int
	for from > 0 {
		from -= indentUnit
		widths = append(widths, max(from, 0))
	}
	return widths
}

// leadingSpaces counts leading space characters. Tabs are not expanded;
// mixing tabs and spaces breaks the accounting, documented above.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
