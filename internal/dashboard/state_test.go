package dashboard

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/domain"
)

func snapshot() domain.Snapshot {
	return domain.Snapshot{
		Generation: 3,
		Digest: domain.DailyDigest{
			Date:             "2025-01-15",
			TotalArticles:    30,
			RelevantArticles: 20,
			Districts:        []string{"Downtown", "North District", "South District"},
			WeeklyComparison: domain.WeeklyComparison{ArticlesChange: 8, TopDistricts: []string{"Downtown"}},
			TopicClusters: []domain.TopicCluster{
				{
					ID: "c1", Title: "Traffic Safety Operations", Priority: domain.PriorityHigh,
					Summary: "Highway patrols increased.",
					Articles: []domain.NewsArticle{
						{ID: "a1", District: "Downtown", Priority: domain.PriorityHigh},
						{ID: "a2", District: "Downtown", Priority: domain.PriorityLow},
					},
				},
				{
					ID: "c2", Title: "Community Engagement Initiatives", Priority: domain.PriorityLow,
					Summary: "Neighborhood watch meetings held downtown.",
					Articles: []domain.NewsArticle{
						{ID: "a3", District: "North District", Priority: domain.PriorityMedium},
						{ID: "a4", District: "Elsewhere", Priority: domain.PriorityMedium},
					},
				},
				{
					ID: "c3", Title: "Criminal Investigation Updates", Priority: domain.PriorityHigh,
					Summary: "Vehicle theft ring arrests.",
				},
			},
		},
		Alerts: []domain.Alert{
			{ID: "x1", Title: "Road closure", ActionRequired: true},
			{ID: "x2", Title: "Rain warning"},
		},
	}
}

func ids(clusters []domain.TopicCluster) []string {
	out := make([]string, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterClusters(t *testing.T) {
	clusters := snapshot().Digest.TopicClusters

	gt.Equal(t, ids(FilterClusters(clusters, FilterAll, "")), []string{"c1", "c2", "c3"})
	gt.Equal(t, ids(FilterClusters(clusters, FilterHigh, "")), []string{"c1", "c3"})
	gt.Equal(t, ids(FilterClusters(clusters, FilterMedium, "")), []string{})
	gt.Equal(t, ids(FilterClusters(clusters, FilterAll, "DOWNTOWN")), []string{"c2"})
	gt.Equal(t, ids(FilterClusters(clusters, FilterHigh, "theft")), []string{"c3"})
	gt.Equal(t, ids(FilterClusters(clusters, FilterLow, "theft")), []string{})
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("High")
	gt.NoError(t, err)
	gt.Equal(t, f, FilterHigh)

	f, err = ParseFilter("")
	gt.NoError(t, err)
	gt.Equal(t, f, FilterAll)

	_, err = ParseFilter("urgent")
	gt.Error(t, err)

	gt.Equal(t, FilterLow.Next(), FilterAll)
	gt.Equal(t, FilterAll.Next(), FilterHigh)
	gt.Equal(t, FilterMedium.Label(), "Medium Priority")
	gt.Equal(t, FilterAll.Label(), "All Priorities")
}

func TestStateSelectionAndViewMode(t *testing.T) {
	s := New(snapshot())
	gt.Equal(t, s.View, ViewGrid)
	s.View = s.View.Toggle()
	gt.Equal(t, s.View, ViewList)

	_, ok := s.Selected()
	gt.False(t, ok)

	gt.NoError(t, s.Select("c2")).Required()
	c, ok := s.Selected()
	gt.True(t, ok)
	gt.Equal(t, c.Title, "Community Engagement Initiatives")

	err := s.Select("missing")
	gt.True(t, errors.Is(err, domain.ErrClusterNotFound))

	s.CloseDetail()
	_, ok = s.Selected()
	gt.False(t, ok)
}

func TestStateDismiss(t *testing.T) {
	snap := snapshot()
	s := New(snap)

	gt.NoError(t, s.Dismiss("x1")).Required()
	gt.Equal(t, len(s.Alerts()), 1)
	gt.Equal(t, s.Alerts()[0].ID, "x2")
	gt.Equal(t, len(s.Snapshot.Alerts), 2)
	gt.Equal(t, len(snap.Alerts), 2)

	err := s.Dismiss("x1")
	gt.True(t, errors.Is(err, domain.ErrAlertNotFound))

	input := s.RenderInput()
	gt.Equal(t, len(input.Alerts), 1)
	gt.Equal(t, input.Generation, uint64(3))
}

func TestStateReloadKeepsFilters(t *testing.T) {
	s := New(snapshot())
	s.Filter = FilterHigh
	s.Search = "theft"
	gt.NoError(t, s.Select("c3"))
	gt.NoError(t, s.Dismiss("x2"))

	s.Reload(snapshot())
	gt.Equal(t, s.Filter, FilterHigh)
	gt.Equal(t, s.Search, "theft")
	gt.Equal(t, len(s.Alerts()), 2)
	_, ok := s.Selected()
	gt.False(t, ok)
	gt.Equal(t, ids(s.Clusters()), []string{"c3"})
}

func TestOverview(t *testing.T) {
	s := New(snapshot())
	gt.Equal(t, s.Overview(), Overview{
		TotalArticles:    30,
		RelevantArticles: 20,
		RelevanceRate:    67,
		TopicClusters:    3,
		HighPriority:     2,
		Districts:        3,
		ActiveAlerts:     2,
		ActionRequired:   1,
		ArticlesChange:   8,
	})
}

func TestDistrictAnalytics(t *testing.T) {
	stats := DistrictAnalytics(snapshot().Digest)
	gt.Equal(t, stats, []domain.DistrictStats{
		{
			District:          "Downtown",
			TotalIncidents:    2,
			PriorityBreakdown: domain.PriorityDistribution{High: 1, Low: 1},
			Trend:             domain.TrendIncreasing,
		},
		{
			District:          "North District",
			TotalIncidents:    1,
			PriorityBreakdown: domain.PriorityDistribution{Medium: 1},
			Trend:             domain.TrendStable,
		},
		{District: "South District", Trend: domain.TrendStable},
	})

	d := snapshot().Digest
	d.WeeklyComparison.ArticlesChange = -5
	stats = DistrictAnalytics(d)
	gt.Equal(t, stats[0].Trend, domain.TrendStable)
	gt.Equal(t, stats[1].Trend, domain.TrendDecreasing)
}
