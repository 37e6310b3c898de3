package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/repos"
)

// Below this width the hero stacks the animation under the text.
const heroSplitWidth = 100

type layout struct {
	lines      []string
	logoTop    int
	logoHeight int
}

func (m Model) layout() layout {
	var l layout
	add := func(block string) {
		l.lines = append(l.lines, strings.Split(block, "\n")...)
	}
	rule := Separator(min(m.width, 80), m.styles.Muted)

	add(m.viewHero())
	add("")
	add(rule)
	add("")

	logoBlock := m.viewLogo()
	l.logoTop = len(l.lines)
	l.logoHeight = lipgloss.Height(logoBlock)
	add(logoBlock)

	add("")
	add(rule)
	add("")
	add(m.viewProjects())
	add("")
	add(m.viewFooter())
	return l
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout()
	vh := m.viewHeight()
	start := min(m.offset, max(0, len(l.lines)-vh))
	end := min(start+vh, len(l.lines))
	return strings.Join(l.lines[start:end], "\n") + "\n" + m.viewHelp()
}

func (m Model) viewHero() string {
	p := m.cfg.Profile
	rows := []string{
		GradientText(p.Name, m.theme.Primary, m.theme.Accent, true),
		"",
		m.styles.Title.Render(p.Title),
		m.styles.Bio.Render(p.Bio),
	}
	for _, link := range p.Links {
		rows = append(rows, m.styles.Link.Render(link.Label)+m.styles.Muted.Render("  "+link.URL))
	}
	text := lipgloss.JoinVertical(lipgloss.Left, rows...)
	art := m.styles.Art.Render(m.animFrame.String())

	if m.width < heroSplitWidth {
		return lipgloss.JoinVertical(lipgloss.Left, text, "", art)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, text, "    ", art)
}

func (m Model) viewLogo() string {
	block := m.styles.Art.Render(m.logoFrame.String())
	return lipgloss.PlaceHorizontal(max(m.width, lipgloss.Width(block)), lipgloss.Center, block)
}

func (m Model) viewProjects() string {
	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("Projects"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("Loading projects..."))
		return b.String()
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Could not load projects: " + m.err.Error()))
		return b.String()
	}

	b.WriteString(m.viewCategories())
	b.WriteString("\n\n")

	page := m.currentPage()
	if page.Total == 0 {
		b.WriteString(m.styles.Muted.Render("No projects found."))
		return b.String()
	}
	for _, r := range page.Items {
		b.WriteString(m.viewCard(r))
		b.WriteString("\n")
	}
	b.WriteString(m.viewPagination(page))

	if chart := StarsChart(page.Items, min(60, max(m.width-12, 20))); chart != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Graph.Render(chart))
	}
	return b.String()
}

func (m Model) viewCategories() string {
	cats := repos.Categories(m.projects)
	parts := make([]string, len(cats))
	for i, c := range cats {
		label := fmt.Sprintf("%s (%d)", c.Name, c.Count)
		if c.Name == m.category {
			parts[i] = m.styles.CategoryOn.Render(label)
		} else {
			parts[i] = m.styles.Category.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewCard(r repos.Repository) string {
	header := m.styles.CardTitle.Render(r.Name)
	if r.Language != "" {
		header += "  " + LanguageBadge(r.Language)
	}
	desc := r.Description
	if desc == "" {
		desc = "No description provided."
	}
	rows := []string{header, m.styles.Description.Render(desc)}

	if topics := r.TopTopics(3); len(topics) > 0 {
		tags := make([]string, len(topics))
		for i, t := range topics {
			tags[i] = m.styles.Topic.Render(t)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	}

	meta := fmt.Sprintf("★ %d  ⑂ %d", r.Stars, r.Forks)
	if !r.UpdatedAt.IsZero() {
		meta += "  updated " + r.UpdatedAt.Format("2006-01-02")
	}
	rows = append(rows, m.styles.Muted.Render(meta))

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) viewPagination(page repos.Page) string {
	info := m.styles.Muted.Render(fmt.Sprintf("Showing %d-%d of %d", page.Start+1, page.End, page.Total))
	if page.TotalPages <= 1 {
		return info
	}

	var b strings.Builder
	b.WriteString(m.arrow("‹", page.HasPrev()))
	for n := 1; n <= page.TotalPages; n++ {
		label := fmt.Sprintf(" %d ", n)
		if n == page.Number {
			b.WriteString(m.styles.PageOn.Render(label))
		} else {
			b.WriteString(m.styles.Muted.Render(label))
		}
	}
	b.WriteString(m.arrow("›", page.HasNext()))
	return info + "    " + b.String()
}

func (m Model) arrow(s string, enabled bool) string {
	if enabled {
		return m.styles.Link.UnsetUnderline().Render(" " + s + " ")
	}
	return m.styles.Muted.Faint(true).Render(" " + s + " ")
}

func (m Model) viewFooter() string {
	return m.styles.Muted.Render(fmt.Sprintf("© %d %s. All rights reserved.", m.year, m.cfg.Profile.Name))
}

func (m Model) viewHelp() string {
	return m.styles.Help.Render(fmt.Sprintf(
		"j/k scroll · h/l language · [/] page · t theme (%s) · q quit", m.theme.Name))
}
