package gen

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	diffHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

type editOp int

const (
	editKeep editOp = iota
	editAdd
	editDel
)

type editLine struct {
	oldNum int // 1-based line in old content, 0 for additions
	newNum int // 1-based line in new content, 0 for removals
	text   string
	op     editOp
}

// Diff renders a styled unified diff between two versions of a file.
// Returns "" when the contents are identical.
func Diff(path string, existing, generated []byte) string {
	if bytes.Equal(existing, generated) {
		return ""
	}
	if isBinary(existing) || isBinary(generated) {
		return "Binary files differ\n"
	}

	oldLines := toLines(existing)
	newLines := toLines(generated)
	script := myers(oldLines, newLines)

	const contextLines = 3
	hunks := groupHunks(script, contextLines)
	if len(hunks) == 0 {
		return ""
	}

	width := terminalWidth()

	var b strings.Builder
	b.WriteString(diffHeaderStyle.Render("--- "+path) + "\n")
	b.WriteString(diffHeaderStyle.Render("+++ "+path+" (generated)") + "\n")
	for _, h := range hunks {
		b.WriteString(formatHunk(h, width))
	}
	return b.String()
}

// myers computes the shortest edit script between two line slices.
// Based on Myers' O(ND) difference algorithm.
func myers(old, newer []string) []editLine {
	n, m := len(old), len(newer)
	maxD := n + m

	v := map[int]int{1: 0}
	var trace []map[int]int

	for d := 0; d <= maxD; d++ {
		snapshot := make(map[int]int, len(v))
		for k, x := range v {
			snapshot[k] = x
		}
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1]
			} else {
				x = v[k-1] + 1
			}
			y := x - k
			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}
			v[k] = x
			if x >= n && y >= m {
				return backtrack(trace, old, newer, n, m)
			}
		}
	}
	return backtrack(trace, old, newer, n, m)
}

func backtrack(trace []map[int]int, old, newer []string, n, m int) []editLine {
	var script []editLine
	x, y := n, m

	prepend := func(l editLine) {
		script = append([]editLine{l}, script...)
	}

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1] < v[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			prepend(editLine{oldNum: x + 1, newNum: y + 1, text: old[x], op: editKeep})
		}

		if d > 0 {
			if x == prevX {
				y--
				prepend(editLine{newNum: y + 1, text: newer[y], op: editAdd})
			} else {
				x--
				prepend(editLine{oldNum: x + 1, text: old[x], op: editDel})
			}
		}
	}

	return script
}

type diffHunk struct {
	oldStart, oldCount int
	newStart, newCount int
	lines              []editLine
}

// groupHunks splits the edit script into change blocks with surrounding
// context, dropping long unchanged stretches.
func groupHunks(script []editLine, context int) []diffHunk {
	// Index of every changed line.
	var changed []int
	for i, l := range script {
		if l.op != editKeep {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	var hunks []diffHunk
	start := max(0, changed[0]-context)
	end := min(len(script), changed[0]+context+1)

	for _, idx := range changed[1:] {
		if idx-context <= end {
			end = min(len(script), idx+context+1)
			continue
		}
		hunks = append(hunks, makeHunk(script[start:end]))
		start = max(0, idx-context)
		end = min(len(script), idx+context+1)
	}
	hunks = append(hunks, makeHunk(script[start:end]))

	return hunks
}

func makeHunk(lines []editLine) diffHunk {
	h := diffHunk{lines: lines}
	for _, l := range lines {
		if l.oldNum > 0 && (h.oldStart == 0 || l.oldNum < h.oldStart) {
			h.oldStart = l.oldNum
		}
		if l.newNum > 0 && (h.newStart == 0 || l.newNum < h.newStart) {
			h.newStart = l.newNum
		}
		if l.op != editAdd {
			h.oldCount++
		}
		if l.op != editDel {
			h.newCount++
		}
	}
	return h
}

func formatHunk(h diffHunk, width int) string {
	var b strings.Builder
	b.WriteString(hunkStyle.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)) + "\n")

	for _, l := range h.lines {
		text := truncate(strings.ReplaceAll(l.text, "\t", "    "), width-2)
		switch l.op {
		case editAdd:
			b.WriteString(addedStyle.Render("+"+text) + "\n")
		case editDel:
			b.WriteString(removedStyle.Render("-"+text) + "\n")
		default:
			b.WriteString(" " + text + "\n")
		}
	}
	return b.String()
}

func toLines(data []byte) []string {
	s := string(data)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isBinary(data []byte) bool {
	probe := data
	if len(probe) > 8192 {
		probe = probe[:8192]
	}
	return bytes.IndexByte(probe, 0) != -1
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 3 {
		maxWidth = 80
	}
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	return string(runes[:maxWidth-3]) + "..."
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
