package mockdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/domain"
)

var clock = func() time.Time { return time.Date(2025, time.January, 15, 7, 0, 0, 0, time.UTC) }

func TestGenerateIsDeterministicPerDate(t *testing.T) {
	t.Parallel()

	g := NewGenerator(nil, clock)
	day := time.Date(2025, time.January, 15, 18, 30, 0, 0, time.UTC)

	d1, a1, err := g.Generate(context.Background(), day)
	gt.NoError(t, err).Required()
	d2, a2, err := g.Generate(context.Background(), day.Add(-10*time.Hour))
	gt.NoError(t, err).Required()

	gt.Equal(t, d1, d2)
	gt.Equal(t, a1, a2)
	gt.Equal(t, d1.Date, "2025-01-15")

	other, _, err := g.Generate(context.Background(), day.AddDate(0, 0, 1))
	gt.NoError(t, err).Required()
	gt.Equal(t, other.Date, "2025-01-16")
	gt.NotEqual(t, other.TopicClusters[0].ID, d1.TopicClusters[0].ID)
}

func TestGenerateShape(t *testing.T) {
	t.Parallel()

	g := NewGenerator(nil, clock)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		day := start.AddDate(0, 0, i)
		d, alerts, err := g.Generate(context.Background(), day)
		gt.NoError(t, err).Required()

		gt.NoError(t, d.Validate())
		gt.True(t, d.TotalArticles >= minArticlesPerDay)
		gt.True(t, d.TotalArticles < minArticlesPerDay+articlesPerDaySpan)
		gt.True(t, d.RelevantArticles <= d.TotalArticles)
		gt.True(t, len(d.TopicClusters) <= maxClusters)
		gt.True(t, len(alerts) <= maxAlerts)
		gt.Equal(t, d.Alerts, alerts)
		gt.Equal(t, d.GeneratedAt, clock())
		gt.True(t, len(d.WeeklyComparison.TopDistricts) <= topDistrictCount)
		gt.V(t, d.WeatherImpact).NotNil()

		if d.RelevantArticles > 0 {
			gt.True(t, len(d.TopicClusters) > 0)
		}

		pd := d.WeeklyComparison.PriorityDistribution
		gt.Equal(t, pd.High+pd.Medium+pd.Low, d.RelevantArticles)

		for _, c := range d.TopicClusters {
			gt.True(t, c.Priority.Valid())
			gt.True(t, c.RiskLevel.Valid())
			gt.True(t, c.Trends.WeeklyTrend.Valid())
			gt.True(t, len(c.Articles) >= 1 && len(c.Articles) <= clusterSize)
			gt.True(t, len(c.RelatedArticles) <= maxRelated)
			gt.True(t, len(c.ActionItems) <= maxActionItems)
			gt.True(t, c.Trends.Coverage >= 25 && c.Trends.Coverage < 75)
			for _, a := range c.Articles {
				gt.True(t, a.Relevant())
				gt.Equal(t, a.PublishedAt.Format(domain.DateLayout), d.Date)
			}
			for _, a := range c.RelatedArticles {
				gt.NotEqual(t, a.PublishedAt.Format(domain.DateLayout), d.Date)
			}
		}

		for _, a := range alerts {
			gt.True(t, a.Type.Valid())
			gt.True(t, a.Priority.Valid())
			gt.Equal(t, a.Timestamp.Format(domain.DateLayout), d.Date)
		}
	}
}

func TestGenerateHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewGenerator(nil, clock).Generate(ctx, clock())
	gt.True(t, errors.Is(err, context.Canceled))
}

func TestName(t *testing.T) {
	gt.Equal(t, NewGenerator(nil, nil).Name(), "mock")
}
