package components

import (
	"math"
	"strings"
	"time"

	"github.com/fluxoryn/vibe-fuse/internal/tui/styles"
	"github.com/fluxoryn/vibe-fuse/internal/vibe"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// ShiftCycle is one full back-and-forth pass of the animated gradient.
const ShiftCycle = 8 * time.Second

// Static is the phase value that disables shifting.
const Static = -1.0

// StopColor converts a palette stop to an RGB color.
func StopColor(c vibe.Color) colorful.Color {
	return colorful.Hsl(float64(c.Hue), float64(c.Saturation)/100, float64(c.Lightness)/100).Clamped()
}

// ShiftPhase maps elapsed animation time to a background offset in [0,1].
// The offset eases from 0 to 1 over the first half of ShiftCycle and back
// over the second half.
func ShiftPhase(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := ShiftCycle.Seconds()
	u := math.Mod(elapsed.Seconds(), cycle) / cycle
	if u < 0.5 {
		return easeInOut(u * 2)
	}
	return 1 - easeInOut((u-0.5)*2)
}

func easeInOut(x float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*x)
}

// CellColors returns the color of each of width cells. With phase Static the
// stops sit at the edges; otherwise the gradient is twice as wide as the
// cells and phase slides the visible window across it.
func CellColors(p vibe.Palette, width int, phase float64) []colorful.Color {
	if width <= 0 {
		return nil
	}
	from, to := StopColor(p[0]), StopColor(p[1])

	cells := make([]colorful.Color, width)
	for x := range cells {
		pos := 0.0
		if width > 1 {
			pos = float64(x) / float64(width-1)
		}
		if phase >= 0 {
			pos = (pos + phase) / 2
		}
		cells[x] = from.BlendRgb(to, pos).Clamped()
	}
	return cells
}

// Gradient renders p as a width x height block of colored cells with label
// centered on the middle row. Labels wider than the block are truncated.
func Gradient(p vibe.Palette, width, height int, label string, phase float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cells := CellColors(p, width, phase)

	plain := make([]string, width)
	for x, c := range cells {
		plain[x] = cellStyle(c).Render(" ")
	}
	blank := strings.Join(plain, "")

	rows := make([]string, height)
	for y := range rows {
		rows[y] = blank
	}
	if label != "" {
		rows[height/2] = labelRow(cells, label)
	}
	return strings.Join(rows, "\n")
}

// Swatch renders a single-row gradient for list entries.
func Swatch(p vibe.Palette, width int) string {
	return Gradient(p, width, 1, "", Static)
}

func labelRow(cells []colorful.Color, label string) string {
	width := len(cells)
	label = ansi.Truncate(label, width, "…")
	start := max((width-ansi.StringWidth(label))/2, 0)

	var b strings.Builder
	x := 0
	for ; x < start; x++ {
		b.WriteString(cellStyle(cells[x]).Render(" "))
	}
	for _, r := range label {
		w := ansi.StringWidth(string(r))
		if w == 0 || x+w > width {
			continue
		}
		b.WriteString(cellStyle(cells[x]).Foreground(styles.White).Bold(true).Render(string(r)))
		x += w
	}
	for ; x < width; x++ {
		b.WriteString(cellStyle(cells[x]).Render(" "))
	}
	return b.String()
}

func cellStyle(c colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
}
