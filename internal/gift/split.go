package gift

import "strings"

// HeaderMarker opens a question block.
const HeaderMarker = "::"

// Split breaks raw file text into candidate question blocks.
//
// A line whose trimmed form starts with "::" opens a block and the following
// lines are appended to it, each trimmed, until the next header or the end of
// input. Text before the first header is dropped. Once a block's choice
// section has been closed, a header later on the same line opens a new block,
// so files with several questions per line split the same way as files with
// one question per paragraph.
func Split(raw string) []string {
	builder := &blockBuilder{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if strings.HasPrefix(line, HeaderMarker) {
			builder.start()
		} else if !builder.active {
			continue
		}
		builder.addLine(line)
	}
	builder.flush()
	return builder.blocks
}

// blockBuilder accumulates lines into blocks while tracking the choice section.
type blockBuilder struct {
	blocks []string
	lines  []string
	active bool
	opened bool
	closed bool
}

// start flushes the current block and opens a new one.
func (b *blockBuilder) start() {
	b.flush()
	b.active = true
	b.opened = false
	b.closed = false
}

// flush emits the current block without its trailing blank lines.
func (b *blockBuilder) flush() {
	if !b.active {
		return
	}
	lines := b.lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	b.blocks = append(b.blocks, strings.Join(lines, "\n"))
	b.lines = nil
	b.active = false
}

// addLine appends a trimmed line, cutting it at inline headers.
func (b *blockBuilder) addLine(line string) {
	for {
		cut := b.scan(line)
		if cut < 0 {
			b.lines = append(b.lines, line)
			return
		}
		if head := strings.TrimSpace(line[:cut]); head != "" {
			b.lines = append(b.lines, head)
		}
		b.start()
		line = line[cut:]
	}
}

// scan advances the brace state over line and returns the offset of a header
// that follows a closed choice section, or -1.
func (b *blockBuilder) scan(line string) int {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case b.closed:
			if strings.HasPrefix(line[i:], HeaderMarker) {
				return i
			}
		case c == '{' && !b.opened:
			b.opened = true
		case c == '}' && b.opened:
			b.opened = false
			b.closed = true
		}
	}
	return -1
}
