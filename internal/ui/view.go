package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"PoliceDigest/internal/dashboard"
	"PoliceDigest/internal/domain"
)

const (
	gridColumns  = 2
	summaryWidth = 60
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("AP State Police Daily Digest"))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s | %s | %s view",
		m.day.Format(domain.DateLayout), m.filter.Label(), m.view)))
	b.WriteString("\n\n")

	if m.detail != nil {
		b.WriteString(m.detailView(*m.detail))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("esc: back"))
		return b.String()
	}

	if m.processing {
		b.WriteString(m.progressView())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}

	if m.loaded && !m.processing {
		b.WriteString(m.overviewView())
		b.WriteString("\n")
		if m.searching || m.search.Value() != "" {
			b.WriteString(m.search.View())
			b.WriteString("\n")
		}
		b.WriteString(m.clustersView())
		b.WriteString("\n")
		b.WriteString(m.alertsView())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(
		"[/]: day  r: refresh  /: search  f: filter  v: view  tab: pane  enter: open  d: dismiss  e: export  q: quit"))
	return b.String()
}

func (m Model) progressView() string {
	step, pct := "Starting", 0.0
	if m.status != nil {
		step, pct = m.status.Step, float64(m.status.Progress)/100
	}
	return fmt.Sprintf("%s %s\n%s", m.spinner.View(), step, m.progress.ViewAs(pct))
}

func (m Model) overviewView() string {
	o := m.overview
	stat := func(label string, v any) string {
		return m.styles.Stat.Render(fmt.Sprint(v)) + " " + m.styles.Subtle.Render(label)
	}
	change := fmt.Sprintf("%+d%%", o.ArticlesChange)
	return strings.Join([]string{
		stat("articles", o.TotalArticles),
		stat("relevant", fmt.Sprintf("%d (%d%%)", o.RelevantArticles, o.RelevanceRate)),
		stat("clusters", o.TopicClusters),
		stat("high priority", o.HighPriority),
		stat("alerts", o.ActiveAlerts),
		stat("vs last week", change),
	}, "   ")
}

func (m Model) clustersView() string {
	title := m.styles.Header.Render(fmt.Sprintf("Topic Clusters (%d)", len(m.clusters)))
	if len(m.clusters) == 0 {
		return title + "\n" + m.styles.Subtle.Render("No clusters match the current filter.")
	}

	cards := make([]string, len(m.clusters))
	for i, c := range m.clusters {
		cards[i] = m.clusterLine(i, c)
	}

	if m.view == dashboard.ViewList {
		return title + "\n" + strings.Join(cards, "\n")
	}

	var rows []string
	for i := 0; i < len(cards); i += gridColumns {
		end := min(i+gridColumns, len(cards))
		cells := make([]string, 0, gridColumns)
		for _, card := range cards[i:end] {
			cells = append(cells, m.styles.Panel.Width(summaryWidth/gridColumns+10).Render(card))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) clusterLine(i int, c domain.TopicCluster) string {
	marker := "  "
	titleStyle := lipgloss.NewStyle()
	if m.focus == paneClusters && i == m.cursor {
		marker = "> "
		titleStyle = m.styles.Selected
	}
	line := marker + priorityStyle(c.Priority).Render(strings.ToUpper(string(c.Priority))) + " " +
		titleStyle.Render(c.Title) +
		m.styles.Subtle.Render(fmt.Sprintf(" (%d articles)", len(c.Articles)))
	if m.view == dashboard.ViewList {
		line += "\n    " + m.styles.Subtle.Render(truncate(c.Summary, summaryWidth))
	}
	return line
}

func (m Model) alertsView() string {
	title := m.styles.Header.Render(fmt.Sprintf("Active Alerts (%d)", len(m.alerts)))
	if len(m.alerts) == 0 {
		return title + "\n" + m.styles.Subtle.Render("No active alerts.")
	}

	lines := []string{title}
	for i, a := range m.alerts {
		marker := "  "
		if m.focus == paneAlerts && i == m.alertCursor {
			marker = "> "
		}
		line := marker + priorityStyle(a.Priority).Render("["+strings.ToUpper(string(a.Priority))+"]") + " " + a.Title
		if a.ActionRequired {
			line += " " + m.styles.Error.Render("ACTION REQUIRED")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) detailView(c domain.TopicCluster) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(c.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  risk %s  sentiment %s  trend %s\n",
		priorityStyle(c.Priority).Render(strings.ToUpper(string(c.Priority))),
		c.RiskLevel, c.Trends.Sentiment, c.Trends.WeeklyTrend)
	fmt.Fprintf(&b, "Districts: %s\n", strings.Join(c.AffectedDistricts, ", "))
	fmt.Fprintf(&b, "Sources: %s\n\n", strings.Join(c.Trends.Sources, ", "))
	b.WriteString(c.Summary)
	b.WriteString("\n")

	if len(c.ActionItems) > 0 {
		b.WriteString("\n" + m.styles.Header.Render("Action Items") + "\n")
		for _, item := range c.ActionItems {
			b.WriteString("  - " + item + "\n")
		}
	}
	if len(c.Articles) > 0 {
		b.WriteString("\n" + m.styles.Header.Render("Articles") + "\n")
		for _, a := range c.Articles {
			fmt.Fprintf(&b, "  %s %s\n", m.styles.Subtle.Render(a.Source+":"), a.Title)
		}
	}
	if len(c.RelatedArticles) > 0 {
		b.WriteString("\n" + m.styles.Header.Render("Related Coverage") + "\n")
		for _, a := range c.RelatedArticles {
			fmt.Fprintf(&b, "  %s %s\n", m.styles.Subtle.Render(a.PublishedAt.Format(domain.DateLayout)), a.Title)
		}
	}
	return m.styles.Panel.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
