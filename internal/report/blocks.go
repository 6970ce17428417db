package report

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/markup"
)

const (
	titleBlockHeight = 20.0
	metaPad          = 3.0
	metaLabelWidth   = 30.0
	alertPad         = 3.0
	alertGap         = 4.0
	badgeWidth       = 38.0
	badgeRiskOffset  = 42.0
	badgeRiskWidth   = 34.0
	badgeRowHeight   = 7.0
	clusterIndent    = 5.0
	clusterGap       = 5.0
	maxActionItems   = 4
	cellPad          = 2.0
	minRowHeight     = 8.0
	authBlockHeight  = 44.0
)

var statColumnWidths = [4]float64{50, 28, 50, 42}

var statColumnTitles = [4]string{"Metric", "Current", "Comparison", "Trend"}

var distributionList = []string{
	"Director General of Police",
	"Additional Director General of Police (Law & Order)",
	"Inspector General of Police (Intelligence)",
	"Commissioners of Police, all Commissionerates",
	"Superintendents of Police, all Districts",
	"State Control Room Duty Officer",
}

func label(s string) string {
	if s == "" {
		return "N/A"
	}
	return cases.Title(language.English).String(s)
}

func upper(s string) string {
	if s == "" {
		return "UNSPECIFIED"
	}
	return strings.ToUpper(s)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func signedPercent(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d%%", v)
	}
	return fmt.Sprintf("%d%%", v)
}

func drawTitle(p *pen, title, subtitle string) {
	y := p.c.Y()
	p.text(p.left(), y+fontTitle.baseline(), title, fontTitle, colorInk)
	p.text(p.left(), y+fontTitle.LineHeight()+fontSubtitle.baseline(), subtitle, fontSubtitle, colorMuted)
	p.c.Advance(titleBlockHeight)
}

type metaField struct {
	label string
	value string
}

// drawMetadata paints a bordered box of two label/value columns sized to
// the wrapped values it holds.
func drawMetadata(p *pen, left, right []metaField) {
	colWidth := p.width() / 2
	valueWidth := colWidth - metaLabelWidth - 2*metaPad
	lh := fontSmall.LineHeight()

	rows := max(len(left), len(right))
	type wrappedRow struct{ left, right []string }
	wrapped := make([]wrappedRow, rows)
	height := 2 * metaPad
	for i := 0; i < rows; i++ {
		if i < len(left) {
			wrapped[i].left = Wrap(p.m, left[i].value, valueWidth, fontSmall)
		}
		if i < len(right) {
			wrapped[i].right = Wrap(p.m, right[i].value, valueWidth, fontSmall)
		}
		height += float64(max(1, len(wrapped[i].left), len(wrapped[i].right))) * lh
	}

	p.c.EnsureSpace(height)
	x := p.left()
	y := p.c.Y()
	p.draw(RectOp{X: x, Y: y, W: p.width(), H: height, Radius: 1, Fill: colorShade, Stroke: colorRule, LineWidth: 0.3, Style: PaintFillStroke})

	rowY := y + metaPad
	for i := 0; i < rows; i++ {
		if i < len(left) {
			p.text(x+metaPad, rowY+fontLabel.baseline(), left[i].label, fontLabel, colorMuted)
			p.block(x+metaPad+metaLabelWidth, rowY, wrapped[i].left, fontSmall, colorInk)
		}
		if i < len(right) {
			p.text(x+colWidth+metaPad, rowY+fontLabel.baseline(), right[i].label, fontLabel, colorMuted)
			p.block(x+colWidth+metaPad+metaLabelWidth, rowY, wrapped[i].right, fontSmall, colorInk)
		}
		rowY += float64(max(1, len(wrapped[i].left), len(wrapped[i].right))) * lh
	}

	p.c.Advance(height + sectionGap)
}

func summaryText(d *domain.DailyDigest, alerts []domain.Alert) string {
	high := 0
	for _, c := range d.TopicClusters {
		if c.Priority == domain.PriorityHigh {
			high++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "On %s the monitoring system processed %d news articles, of which %d (%d%%) were assessed as relevant to police operations. ",
		d.Day().Format("January 02, 2006"), d.TotalArticles, d.RelevantArticles, d.RelevanceRate())
	fmt.Fprintf(&b, "Relevant coverage was grouped into %d topic clusters across %d districts; %d of them are rated high priority. ",
		len(d.TopicClusters), len(d.Districts), high)
	fmt.Fprintf(&b, "Article volume changed by %s against the previous seven-day average. ",
		signedPercent(d.WeeklyComparison.ArticlesChange))

	if len(alerts) == 0 {
		b.WriteString("No active alerts were raised for this period.")
		return b.String()
	}

	action := 0
	for _, a := range alerts {
		if a.ActionRequired {
			action++
		}
	}
	fmt.Fprintf(&b, "%d active alerts are listed below, %d of which require immediate action.", len(alerts), action)
	return b.String()
}

func drawSummary(p *pen, d *domain.DailyDigest, alerts []domain.Alert) {
	p.heading("Executive Summary", AnchorSummary)
	p.paragraph(p.left(), summaryText(d, alerts), p.width(), fontBody, colorInk)

	if d.WeatherImpact != nil {
		p.c.Advance(2)
		drawWeather(p, *d.WeatherImpact)
	}
	p.c.Advance(sectionGap)
}

func drawWeather(p *pen, w domain.WeatherImpact) {
	indent := p.left() + clusterIndent
	inner := p.width() - clusterIndent

	p.c.EnsureSpace(fontSubheading.LineHeight() + 2*fontSmall.LineHeight())
	p.line(p.left(), "Weather Impact", fontSubheading, colorBrand)
	p.paragraph(indent, fmt.Sprintf("Conditions: %s, %.0f°C | Crime correlation: %s",
		markup.PlainText(w.Condition), w.Temperature, label(string(w.CrimeCorrelation))), inner, fontSmall, colorInk)
	p.paragraph(indent, w.Description, inner, fontSmall, colorMuted)
	for _, rec := range w.Recommendations {
		p.paragraph(indent+3, "- "+markup.PlainText(rec), inner-3, fontSmall, colorInk)
	}
}

func alertMeta(a domain.Alert) string {
	return fmt.Sprintf("Priority: %s | Type: %s | Districts: %s | Time: %s",
		upper(string(a.Priority)), label(string(a.Type)), joinOr(a.Districts, domain.AllDistricts), a.Timestamp.Format("15:04"))
}

// drawAlertBox paints one alert as a colored rounded box whose height is
// measured from its wrapped content. The box is never split across pages.
func drawAlertBox(p *pen, index int, a domain.Alert) {
	colors := AlertColors(a.Priority)
	inner := p.width() - 2*alertPad - 2
	x := p.left() + alertPad + 1

	titleLines := Wrap(p.m, fmt.Sprintf("%d. %s", index+1, markup.PlainText(a.Title)), inner, fontSubheading)
	metaLines := Wrap(p.m, alertMeta(a), inner, fontSmall)
	descLines := Wrap(p.m, markup.PlainText(a.Description), inner, fontBody)

	height := 2*alertPad +
		float64(len(titleLines))*fontSubheading.LineHeight() +
		float64(len(metaLines))*fontSmall.LineHeight() +
		float64(len(descLines))*fontBody.LineHeight()
	if a.ActionRequired {
		height += fontEmphasis.LineHeight() + 1
	}

	p.c.EnsureSpace(height)
	p.mark(AnchorAlert, a.Title, 1)

	y := p.c.Y()
	p.draw(RectOp{X: p.left(), Y: y, W: p.width(), H: height, Radius: 2, Fill: colors.Background, Stroke: colors.Border, LineWidth: 0.4, Style: PaintFillStroke})

	cy := y + alertPad
	cy = p.block(x, cy, titleLines, fontSubheading, colors.Text)
	cy = p.block(x, cy, metaLines, fontSmall, colorMuted)
	cy = p.block(x, cy, descLines, fontBody, colorInk)
	if a.ActionRequired {
		p.text(x, cy+1+fontEmphasis.baseline(), "ACTION REQUIRED - immediate response needed", fontEmphasis, colorEmphasis)
	}

	p.c.Advance(height + alertGap)
}

func drawAlerts(p *pen, alerts []domain.Alert) {
	p.heading(fmt.Sprintf("Active Alerts (%d)", len(alerts)), AnchorAlerts)
	for i, a := range alerts {
		drawAlertBox(p, i, a)
	}
	p.c.Advance(sectionGap - alertGap)
}

func clusterMetrics(c domain.TopicCluster) string {
	return fmt.Sprintf("Articles: %d | Related (7 days): %d | Sources: %s | Sentiment: %s | Trend: %s | Coverage: %d%%",
		len(c.Articles), len(c.RelatedArticles), joinOr(c.Trends.Sources, "n/a"),
		label(string(c.Trends.Sentiment)), label(string(c.Trends.WeeklyTrend)), c.Trends.Coverage)
}

// drawCluster writes one cluster section. Each part checks for space on its
// own, so a long cluster continues on the next page.
func drawCluster(p *pen, index int, c domain.TopicCluster) {
	indent := p.left() + clusterIndent
	inner := p.width() - clusterIndent

	header := Wrap(p.m, fmt.Sprintf("%d. %s", index+1, markup.PlainText(c.Title)), p.width(), fontClusterTitle)
	p.c.EnsureSpace(float64(len(header))*fontClusterTitle.LineHeight() + badgeRowHeight)
	p.mark(AnchorCluster, c.Title, 1)
	for _, l := range header {
		p.line(p.left(), l, fontClusterTitle, colorInk)
	}

	p.c.EnsureSpace(badgeRowHeight)
	y := p.c.Y() + 0.5
	p.badge(indent, y, badgeWidth, "PRIORITY: "+upper(string(c.Priority)), PriorityBadge(c.Priority))
	p.badge(indent+badgeRiskOffset, y, badgeRiskWidth, "RISK: "+upper(string(c.RiskLevel)), RiskBadge(c.RiskLevel))
	p.c.Advance(badgeRowHeight)

	p.paragraph(indent, "Affected districts: "+joinOr(c.AffectedDistricts, "none reported"), inner, fontSmall, colorMuted)
	p.paragraph(indent, c.Summary, inner, fontBody, colorInk)
	p.paragraph(indent, clusterMetrics(c), inner, fontItalic, colorMuted)

	if len(c.ActionItems) > 0 {
		p.line(indent, "Recommended actions:", fontLabel, colorInk)
		shown := min(len(c.ActionItems), maxActionItems)
		for i := 0; i < shown; i++ {
			p.paragraph(indent+3, fmt.Sprintf("%d. %s", i+1, c.ActionItems[i]), inner-3, fontSmall, colorInk)
		}
		if hidden := len(c.ActionItems) - shown; hidden > 0 {
			p.line(indent+3, fmt.Sprintf("+%d more", hidden), fontItalic, colorMuted)
		}
	}

	p.c.Advance(clusterGap)
}

func drawClusters(p *pen, clusters []domain.TopicCluster) {
	p.heading(fmt.Sprintf("Topic Clusters (%d)", len(clusters)), AnchorClusters)
	if len(clusters) == 0 {
		p.line(p.left(), "No topic clusters were identified for this date.", fontItalic, colorMuted)
	}
	for i, c := range clusters {
		drawCluster(p, i, c)
	}
	p.c.Advance(sectionGap - clusterGap)
}

type statRow [4]string

func statisticsRows(d *domain.DailyDigest, alerts []domain.Alert) []statRow {
	high, action := 0, 0
	for _, c := range d.TopicClusters {
		if c.Priority == domain.PriorityHigh {
			high++
		}
	}
	for _, a := range alerts {
		if a.ActionRequired {
			action++
		}
	}
	pd := d.WeeklyComparison.PriorityDistribution

	return []statRow{
		{"Total Articles", strconv.Itoa(d.TotalArticles), "Change vs 7-day average", signedPercent(d.WeeklyComparison.ArticlesChange)},
		{"Relevant Articles", strconv.Itoa(d.RelevantArticles), "Relevance threshold", fmt.Sprintf("> %d", domain.RelevanceThreshold)},
		{"Relevance Rate", fmt.Sprintf("%d%%", d.RelevanceRate()), "Relevant / total", fmt.Sprintf("%d / %d", d.RelevantArticles, d.TotalArticles)},
		{"Topic Clusters", strconv.Itoa(len(d.TopicClusters)), "High priority clusters", strconv.Itoa(high)},
		{"High Priority Articles", strconv.Itoa(pd.High), "Medium / low priority", fmt.Sprintf("%d / %d", pd.Medium, pd.Low)},
		{"Active Alerts", strconv.Itoa(len(alerts)), "Action required", strconv.Itoa(action)},
		{"Districts Covered", strconv.Itoa(len(d.Districts)), "Top districts", joinOr(d.WeeklyComparison.TopDistricts, "N/A")},
	}
}

func drawTableHeader(p *pen) {
	h := fontTableHead.LineHeight() + 2*cellPad
	p.c.EnsureSpace(h + minRowHeight)

	y := p.c.Y()
	p.draw(RectOp{X: p.left(), Y: y, W: p.width(), H: h, Fill: colorHeaderRow, Stroke: colorHeaderRow, LineWidth: 0.2, Style: PaintFillStroke})
	x := p.left()
	for i, title := range statColumnTitles {
		p.text(x+cellPad, y+cellPad+fontTableHead.baseline(), title, fontTableHead, colorWhite)
		x += statColumnWidths[i]
	}
	p.c.Advance(h)
}

// drawStatistics writes the fixed four-column table with alternating row
// shading. The header row is repeated when the table crosses a page.
func drawStatistics(p *pen, rows []statRow) {
	p.heading("Statistical Overview", AnchorStatistics)
	drawTableHeader(p)

	for i, row := range rows {
		var cells [4][]string
		lines := 1
		for col, value := range row {
			cells[col] = Wrap(p.m, value, statColumnWidths[col]-2*cellPad, fontTable)
			lines = max(lines, len(cells[col]))
		}
		height := max(minRowHeight, float64(lines)*fontTable.LineHeight()+2*cellPad)

		if p.c.EnsureSpace(height) {
			drawTableHeader(p)
		}

		fill := colorWhite
		if i%2 == 1 {
			fill = colorShade
		}
		y := p.c.Y()
		p.draw(RectOp{X: p.left(), Y: y, W: p.width(), H: height, Fill: fill, Stroke: colorRule, LineWidth: 0.2, Style: PaintFillStroke})

		x := p.left()
		for col := range cells {
			p.block(x+cellPad, y+cellPad, cells[col], fontTable, colorInk)
			x += statColumnWidths[col]
		}
		p.c.Advance(height)
	}
	p.c.Advance(sectionGap)
}

func drawDistribution(p *pen) {
	p.heading("Distribution List", AnchorDistribution)
	for i, recipient := range distributionList {
		p.line(p.left()+3, fmt.Sprintf("%d. %s", i+1, recipient), fontBody, colorInk)
	}
	p.c.Advance(sectionGap)
}

func drawAuthorization(p *pen, preparedBy string, d *domain.DailyDigest) {
	p.heading("Authorization", AnchorAuthorization)
	p.c.EnsureSpace(authBlockHeight)

	x := p.left()
	half := p.width() / 2
	y := p.c.Y()

	p.text(x, y+fontLabel.baseline(), "Prepared by:", fontLabel, colorMuted)
	p.text(x+28, y+fontSmall.baseline(), preparedBy, fontSmall, colorInk)
	y += fontSmall.LineHeight() + 1
	p.text(x, y+fontLabel.baseline(), "Report date:", fontLabel, colorMuted)
	p.text(x+28, y+fontSmall.baseline(), d.Day().Format("January 02, 2006"), fontSmall, colorInk)

	sigY := y + 18
	for i, role := range []string{"Reviewed by", "Approved by"} {
		sx := x + float64(i)*half
		p.draw(LineOp{X1: sx, Y1: sigY, X2: sx + half - 10, Y2: sigY, Color: colorMuted, Width: 0.3})
		p.text(sx, sigY+fontSmall.baseline()+1, role+" (signature, name, rank)", fontSmall, colorMuted)
	}

	p.c.Advance(sigY + fontSmall.LineHeight() + 3 - p.c.Y())
	p.paragraph(x, "This digest is compiled from open-source news monitoring. Verify operational details through official channels before acting on them.",
		p.width(), fontItalic, colorMuted)
}
