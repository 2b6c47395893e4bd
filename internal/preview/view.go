package preview

import (
	"github.com/charmbracelet/lipgloss"

	"honnef.co/go/flowfield"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" flowlines ─ streamline preview ")
	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		m.progress.ViewAs(m.fraction()), " ", dimStyle.Render(m.status))
	helpView := m.help.View(m.keys)

	h := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - lipgloss.Height(helpView)
	canvas := canvasStyle.Render(m.renderSamples(m.width, max(h, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer, helpView)
}

func (m Model) fraction() float64 {
	if m.Done() || m.budget <= 0 {
		return 1
	}
	return float64(m.sampler.Result().Lines) / float64(m.budget)
}

// renderSamples draws every committed sample as a segment, stretching the
// domain over w×h cells.
func (m Model) renderSamples(w, h int) string {
	d := newDots(w, h)
	size := m.ff.Size()
	sx := float64(2*w) / size.Width
	sy := float64(4*h) / size.Height
	project := func(pt flowfield.Point) (int, int) {
		return int(pt.X * sx), int(pt.Y * sy)
	}
	for _, s := range m.ff.Samples() {
		seg := s.Segment()
		x0, y0 := project(seg.P0)
		x1, y1 := project(seg.P1)
		d.line(x0, y0, x1, y1)
	}
	return d.String()
}
