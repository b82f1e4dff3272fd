package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/carousel/cmd/carousel-sim/internal/simhost"
	"github.com/go-drift/carousel/pkg/carousel"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	pageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(16).
			Align(lipgloss.Center)

	currentPageStyle = pageStyle.
				Border(lipgloss.ThickBorder()).
				Bold(true)

	enlargedPageStyle = currentPageStyle.
				Padding(2, 2).
				Width(20)

	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	eventStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(2)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			PaddingLeft(1)
)

func (m model) View() string {
	st := m.sim.Snapshot()
	if !st.Attached {
		return "carousel-sim: no carousel attached\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.cfg.ModulePath + " · carousel-sim"))
	b.WriteString("\n\n")
	b.WriteString(renderPages(st))
	b.WriteString("\n")

	if st.Options["enableindicator"] != "false" {
		b.WriteString(renderIndicator(st))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(renderStatus(st, m.offset)))
	b.WriteString("\n")

	for _, ev := range m.events {
		b.WriteString(eventStyle.Render(ev))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func renderPages(st simhost.State) string {
	enlarge := st.Options["enlargeCenterPage"] == "true"
	reverse := st.Options["reverse"] == "true"

	boxes := make([]string, 0, len(st.Pages))
	for i, page := range st.Pages {
		style := pageStyle
		if i == st.CurrentPage {
			style = currentPageStyle
			if enlarge {
				style = enlargedPageStyle
			}
		}
		if c, ok := termColor(page.Color); ok {
			style = style.BorderForeground(c).Foreground(c)
		}
		boxes = append(boxes, style.Render(fmt.Sprintf("%d\n%s", i, page.Label)))
	}
	if reverse {
		for i, j := 0, len(boxes)-1; i < j; i, j = i+1, j-1 {
			boxes[i], boxes[j] = boxes[j], boxes[i]
		}
	}

	if st.Options["scrollDirection"] == string(carousel.DirectionVertical) {
		return lipgloss.JoinVertical(lipgloss.Center, boxes...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

func renderIndicator(st simhost.State) string {
	active := lipgloss.NewStyle()
	inactive := lipgloss.NewStyle().Faint(true)
	if c, ok := termColor(st.Options["indicatorActiveColor"]); ok {
		active = active.Foreground(c)
	}
	if c, ok := termColor(st.Options["indicatorInactiveColor"]); ok {
		inactive = inactive.Foreground(c).UnsetFaint()
	}

	dots := make([]string, 0, len(st.Pages))
	for i := range st.Pages {
		if i == st.CurrentPage {
			dots = append(dots, active.Render("●"))
		} else {
			dots = append(dots, inactive.Render("○"))
		}
	}
	return "  " + strings.Join(dots, " ")
}

func renderStatus(st simhost.State, offset float64) string {
	autoplay := "off"
	if st.AutoPlay {
		autoplay = "on"
	}
	gestures := "on"
	if st.Options["disableGesture"] == "true" {
		gestures = "off"
	}
	infinite := "on"
	if st.Options["enableInfiniteScroll"] == "false" {
		infinite = "off"
	}
	return fmt.Sprintf("page %d · offset %.2f · auto-play %s · gestures %s · infinite %s",
		st.CurrentPage, offset, autoplay, gestures, infinite)
}

// termColor converts a stored #AARRGGBB color attribute to a terminal color.
func termColor(attr string) (lipgloss.Color, bool) {
	switch len(attr) {
	case 9: // #AARRGGBB: terminals have no alpha
		return lipgloss.Color("#" + attr[3:]), true
	case 7, 4:
		return lipgloss.Color(attr), true
	}
	return "", false
}
