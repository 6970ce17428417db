package domain_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/domain"
)

func TestRelevanceRate(t *testing.T) {
	d := domain.DailyDigest{TotalArticles: 100, RelevantArticles: 42}
	gt.Equal(t, d.RelevanceRate(), 42)

	d = domain.DailyDigest{TotalArticles: 3, RelevantArticles: 2}
	gt.Equal(t, d.RelevanceRate(), 67)

	gt.Equal(t, domain.DailyDigest{}.RelevanceRate(), 0)
}

func TestValidate(t *testing.T) {
	base := domain.DailyDigest{
		TotalArticles:    10,
		RelevantArticles: 4,
		Districts:        []string{"Downtown", "North District"},
		TopicClusters: []domain.TopicCluster{
			{ID: "c1", AffectedDistricts: []string{"Downtown"}},
		},
		Alerts: []domain.Alert{
			{ID: "a1", Districts: []string{domain.AllDistricts}},
		},
	}
	gt.NoError(t, base.Validate())

	t.Run("relevant above total", func(t *testing.T) {
		d := base
		d.RelevantArticles = 11
		gt.Error(t, d.Validate())
	})

	t.Run("unknown cluster district", func(t *testing.T) {
		d := base
		d.TopicClusters = []domain.TopicCluster{{ID: "c2", AffectedDistricts: []string{"Harbor"}}}
		gt.Error(t, d.Validate())
	})

	t.Run("unknown alert district", func(t *testing.T) {
		d := base
		d.Alerts = []domain.Alert{{ID: "a2", Districts: []string{"Harbor"}}}
		gt.Error(t, d.Validate())
	})
}

func TestEnumValidity(t *testing.T) {
	gt.True(t, domain.PriorityHigh.Valid())
	gt.False(t, domain.Priority("urgent").Valid())
	gt.True(t, domain.RiskCritical.Valid())
	gt.False(t, domain.RiskLevel("").Valid())
	gt.True(t, domain.AlertWeather.Valid())
	gt.False(t, domain.Trend("up").Valid())
}

func TestRelevant(t *testing.T) {
	gt.False(t, domain.NewsArticle{RelevanceScore: 70}.Relevant())
	gt.True(t, domain.NewsArticle{RelevanceScore: 71}.Relevant())
}
