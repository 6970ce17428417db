package report

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/domain"
)

// Options carries the branding and page setup of the report.
type Options struct {
	Organization   string
	Subtitle       string
	Classification string
	FilePrefix     string
	PreparedBy     string
	Page           PageConfig
	Now            func() time.Time
}

// DefaultOptions returns the stock AP State Police branding on A4.
func DefaultOptions() Options {
	return Options{
		Organization:   "AP State Police",
		Subtitle:       "Daily News Intelligence Digest",
		Classification: "RESTRICTED - FOR OFFICIAL USE ONLY",
		FilePrefix:     "AP_State_Police_Report",
		PreparedBy:     "Intelligence Analysis Cell",
		Page:           A4(),
		Now:            time.Now,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Organization == "" {
		o.Organization = def.Organization
	}
	if o.Subtitle == "" {
		o.Subtitle = def.Subtitle
	}
	if o.Classification == "" {
		o.Classification = def.Classification
	}
	if o.FilePrefix == "" {
		o.FilePrefix = def.FilePrefix
	}
	if o.PreparedBy == "" {
		o.PreparedBy = def.PreparedBy
	}
	if o.Page.Width == 0 || o.Page.Height == 0 {
		o.Page = def.Page
	}
	if o.Now == nil {
		o.Now = def.Now
	}
	return o
}

// FileName is the deterministic report file name for a digest date.
func FileName(prefix, date string) string {
	return fmt.Sprintf("%s_%s.pdf", prefix, date)
}

// Renderer lays digests out into paginated documents.
type Renderer struct {
	opts     Options
	measurer Measurer
}

// NewRenderer wires the text measurer of the output backend.
func NewRenderer(m Measurer, opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults(), measurer: m}
}

type section int

const (
	sectionHeader section = iota
	sectionMetadata
	sectionSummary
	sectionAlerts
	sectionClusters
	sectionStatistics
	sectionDistribution
	sectionAuthorization
	sectionFinalize
)

var sectionNames = [...]string{
	"header", "metadata", "summary", "alerts", "clusters",
	"statistics", "distribution", "authorization", "finalize",
}

func (s section) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return fmt.Sprintf("section(%d)", int(s))
}

type assembly struct {
	pen     *pen
	stamper *stamper
	opts    Options
	digest  *domain.DailyDigest
	alerts  []domain.Alert
	trace   []section
}

// Render lays out the digest and alerts in a fixed section order and returns
// the finished document. The inputs are read only.
func (r *Renderer) Render(digest *domain.DailyDigest, alerts []domain.Alert) (*Document, error) {
	if digest == nil {
		return nil, goerr.Wrap(domain.ErrNilDigest, "render report")
	}
	if _, err := time.Parse(domain.DateLayout, digest.Date); err != nil {
		return nil, goerr.Wrap(err, "parse digest date", goerr.V("date", digest.Date))
	}

	a := r.assemble(digest, alerts)
	return &Document{
		Config:    r.opts.Page,
		Pages:     a.pen.s.pages,
		Outline:   a.pen.s.outline,
		FileName:  FileName(r.opts.FilePrefix, digest.Date),
		Title:     fmt.Sprintf("%s Daily Report - %s", r.opts.Organization, digest.Date),
		Author:    r.opts.PreparedBy,
		Subject:   r.opts.Subtitle,
		CreatedAt: a.stamper.renderedAt,
	}, nil
}

func (r *Renderer) assemble(digest *domain.DailyDigest, alerts []domain.Alert) *assembly {
	surface := NewSurface(r.opts.Page)
	cursor := NewCursor(surface)
	p := &pen{s: surface, c: cursor, m: r.measurer, cfg: r.opts.Page}
	st := &stamper{
		p:          p,
		org:        r.opts.Organization,
		subtitle:   r.opts.Subtitle,
		classified: r.opts.Classification,
		renderedAt: r.opts.Now(),
	}
	cursor.OnBreak = st.header

	a := &assembly{pen: p, stamper: st, opts: r.opts, digest: digest, alerts: alerts}
	for s := sectionHeader; s <= sectionFinalize; s++ {
		if s == sectionAlerts && len(alerts) == 0 {
			continue
		}
		a.run(s)
	}
	return a
}

func (a *assembly) run(s section) {
	a.trace = append(a.trace, s)
	p, d := a.pen, a.digest

	switch s {
	case sectionHeader:
		a.stamper.header(p.c.Page())
		drawTitle(p, a.opts.Organization+" Daily Report",
			fmt.Sprintf("%s for %s", a.opts.Subtitle, d.Day().Format("Monday, January 02, 2006")))
	case sectionMetadata:
		drawMetadata(p,
			[]metaField{
				{"Report Date", d.Day().Format("January 02, 2006")},
				{"Generated", d.GeneratedAt.Format("January 02, 2006 15:04")},
				{"Prepared By", a.opts.PreparedBy},
			},
			[]metaField{
				{"Classification", a.opts.Classification},
				{"Districts", joinOr(d.Districts, "None")},
				{"Coverage", fmt.Sprintf("%d articles, %d relevant", d.TotalArticles, d.RelevantArticles)},
			})
	case sectionSummary:
		drawSummary(p, d, a.alerts)
	case sectionAlerts:
		drawAlerts(p, a.alerts)
	case sectionClusters:
		drawClusters(p, d.TopicClusters)
	case sectionStatistics:
		drawStatistics(p, statisticsRows(d, a.alerts))
	case sectionDistribution:
		drawDistribution(p)
	case sectionAuthorization:
		drawAuthorization(p, a.opts.PreparedBy, d)
	case sectionFinalize:
		a.stamper.finalize()
	}
}
