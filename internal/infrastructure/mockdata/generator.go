package mockdata

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/ports"
)

// Name is the registry key of the synthetic source.
const Name = "mock"

const (
	historyDays        = 8
	minArticlesPerDay  = 15
	articlesPerDaySpan = 20
	clusterSize        = 4
	maxClusters        = 8
	maxRelated         = 3
	maxAlerts          = 4
	maxActionItems     = 6
	topDistrictCount   = 3
)

// namespace roots every generated identifier so ids are stable per date.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://police-digest.local/mock"))

// Generator fabricates a plausible digest for a date. The same date always
// yields the same digest; only GeneratedAt follows the clock.
type Generator struct {
	logger *slog.Logger
	now    func() time.Time
}

var _ ports.DigestSource = (*Generator)(nil)

// NewGenerator builds the generator. A nil clock uses time.Now.
func NewGenerator(logger *slog.Logger, now func() time.Time) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{logger: logger, now: now}
}

// Name identifies the source in the registry.
func (g *Generator) Name() string {
	return Name
}

// Generate produces the digest and alert list for day.
func (g *Generator) Generate(ctx context.Context, day time.Time) (domain.DailyDigest, []domain.Alert, error) {
	if err := ctx.Err(); err != nil {
		return domain.DailyDigest{}, nil, goerr.Wrap(err, "generate digest")
	}

	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	date := day.Format(domain.DateLayout)
	b := &builder{
		date: date,
		day:  day,
		rng:  rand.New(rand.NewPCG(uint64(day.Unix()), 0x9e3779b97f4a7c15)),
	}

	perDay := b.articles()
	today := perDay[0]
	var history []domain.NewsArticle
	for _, articles := range perDay[1:] {
		history = append(history, articles...)
	}

	var relevant []domain.NewsArticle
	for _, a := range today {
		if a.Relevant() {
			relevant = append(relevant, a)
		}
	}

	alerts := b.alerts()
	digest := domain.DailyDigest{
		Date:             date,
		TotalArticles:    len(today),
		RelevantArticles: len(relevant),
		TopicClusters:    b.clusters(relevant, history),
		Districts:        slices.Clone(districts),
		GeneratedAt:      g.now(),
		WeeklyComparison: b.weekly(perDay, relevant),
		WeatherImpact:    b.weather(),
		Alerts:           slices.Clone(alerts),
	}

	if err := digest.Validate(); err != nil {
		return domain.DailyDigest{}, nil, goerr.Wrap(err, "generated digest is inconsistent", goerr.V("date", date))
	}

	g.logger.Debug("generated digest",
		"date", date,
		"total", digest.TotalArticles,
		"relevant", digest.RelevantArticles,
		"clusters", len(digest.TopicClusters),
		"alerts", len(alerts))

	return digest, alerts, nil
}

type builder struct {
	date string
	day  time.Time
	rng  *rand.Rand
}

func (b *builder) id(kind string, parts ...any) string {
	name := b.date + "/" + kind
	for _, p := range parts {
		name += fmt.Sprintf("/%v", p)
	}
	return uuid.NewSHA1(namespace, []byte(name)).String()
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// articles returns the articles of the digest date first, then one slice
// per preceding day.
func (b *builder) articles() [][]domain.NewsArticle {
	out := make([][]domain.NewsArticle, historyDays)
	for i := 0; i < historyDays; i++ {
		date := b.day.AddDate(0, 0, -i)
		count := minArticlesPerDay + b.rng.IntN(articlesPerDaySpan)
		for j := 0; j < count; j++ {
			out[i] = append(out[i], b.article(date, j))
		}
	}
	return out
}

func (b *builder) article(date time.Time, index int) domain.NewsArticle {
	id := b.id("article", date.Format(domain.DateLayout), index)
	return domain.NewsArticle{
		ID:             id,
		Title:          pick(b.rng, articleTitles),
		Content:        pick(b.rng, articleContents),
		Source:         pick(b.rng, sources),
		PublishedAt:    date.Add(time.Duration(b.rng.IntN(24*60)) * time.Minute),
		URL:            "https://example.com/article/" + id,
		RelevanceScore: 60 + b.rng.IntN(40),
		District:       pick(b.rng, districts),
		Category:       pick(b.rng, categories),
		Priority:       pick(b.rng, priorities),
		Keywords:       slices.Clone(keywords[:2+b.rng.IntN(3)]),
		Sentiment:      pick(b.rng, sentiments),
	}
}

func (b *builder) clusters(relevant, history []domain.NewsArticle) []domain.TopicCluster {
	count := min(len(relevant)/clusterSize+1, maxClusters)

	var out []domain.TopicCluster
	for i := 0; i < count; i++ {
		start := i * clusterSize
		if start >= len(relevant) {
			break
		}
		chunk := relevant[start:min(start+clusterSize, len(relevant))]
		out = append(out, b.cluster(i, chunk, history))
	}
	return out
}

func (b *builder) cluster(index int, chunk, history []domain.NewsArticle) domain.TopicCluster {
	var related []domain.NewsArticle
	for _, a := range history {
		if a.Category == chunk[0].Category {
			related = append(related, a)
			if len(related) == maxRelated {
				break
			}
		}
	}

	affected := uniqueOf(chunk, func(a domain.NewsArticle) string { return a.District })
	affected = affected[:min(len(affected), 1+b.rng.IntN(3))]
	sourceNames := uniqueOf(chunk, func(a domain.NewsArticle) string { return a.Source })
	sourceNames = sourceNames[:min(len(sourceNames), 3)]

	title := b.rng.IntN(len(clusterTitles))
	return domain.TopicCluster{
		ID:                b.id("cluster", index),
		Title:             clusterTitles[title],
		Summary:           clusterSummaries[title],
		Priority:          pick(b.rng, priorities),
		RiskLevel:         pick(b.rng, riskLevels),
		AffectedDistricts: affected,
		Articles:          slices.Clone(chunk[:min(len(chunk), 2+b.rng.IntN(4))]),
		RelatedArticles:   related,
		Trends: domain.ClusterTrends{
			Sentiment:   pick(b.rng, sentiments),
			Coverage:    25 + b.rng.IntN(50),
			Sources:     sourceNames,
			WeeklyTrend: pick(b.rng, trends),
		},
		ActionItems: b.actionItems(),
	}
}

func (b *builder) actionItems() []string {
	n := b.rng.IntN(maxActionItems + 1)
	if n == 0 {
		return nil
	}
	perm := b.rng.Perm(len(actionItems))
	out := make([]string, n)
	for i := range out {
		out[i] = actionItems[perm[i]]
	}
	return out
}

func (b *builder) weekly(perDay [][]domain.NewsArticle, relevant []domain.NewsArticle) domain.WeeklyComparison {
	prior := 0
	for _, articles := range perDay[1:] {
		prior += len(articles)
	}
	avg := float64(prior) / float64(len(perDay)-1)
	change := 0
	if avg > 0 {
		change = int(math.Round((float64(len(perDay[0])) - avg) / avg * 100))
	}

	var dist domain.PriorityDistribution
	perDistrict := map[string]int{}
	for _, a := range relevant {
		switch a.Priority {
		case domain.PriorityHigh:
			dist.High++
		case domain.PriorityMedium:
			dist.Medium++
		case domain.PriorityLow:
			dist.Low++
		}
		perDistrict[a.District]++
	}

	top := make([]string, 0, len(perDistrict))
	for d := range perDistrict {
		top = append(top, d)
	}
	sort.Slice(top, func(i, j int) bool {
		if perDistrict[top[i]] != perDistrict[top[j]] {
			return perDistrict[top[i]] > perDistrict[top[j]]
		}
		return top[i] < top[j]
	})

	return domain.WeeklyComparison{
		ArticlesChange:       change,
		PriorityDistribution: dist,
		TopDistricts:         top[:min(len(top), topDistrictCount)],
	}
}

func (b *builder) weather() *domain.WeatherImpact {
	w := pick(b.rng, weatherPresets)
	return &domain.WeatherImpact{
		Condition:        w.condition,
		Temperature:      float64(w.minTemp + b.rng.IntN(8)),
		Description:      w.description,
		CrimeCorrelation: w.correlation,
		Recommendations:  slices.Clone(w.recommendations),
	}
}

func (b *builder) alerts() []domain.Alert {
	n := b.rng.IntN(maxAlerts + 1)
	out := make([]domain.Alert, 0, n)
	for i := 0; i < n; i++ {
		preset := pick(b.rng, alertPresets)
		affected := []string{domain.AllDistricts}
		if preset.alertType != domain.AlertWeather {
			affected = []string{pick(b.rng, districts)}
		}
		out = append(out, domain.Alert{
			ID:             b.id("alert", i),
			Type:           preset.alertType,
			Title:          preset.title,
			Description:    preset.description,
			Priority:       pick(b.rng, priorities),
			Districts:      affected,
			Timestamp:      b.day.Add(time.Duration(6*60+b.rng.IntN(14*60)) * time.Minute),
			ActionRequired: b.rng.IntN(2) == 0,
		})
	}
	return out
}

func uniqueOf(articles []domain.NewsArticle, key func(domain.NewsArticle) string) []string {
	var out []string
	for _, a := range articles {
		if k := key(a); !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
