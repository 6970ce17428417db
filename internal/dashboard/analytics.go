package dashboard

import (
	"slices"

	"PoliceDigest/internal/domain"
)

// Overview is the stats strip at the top of the dashboard.
type Overview struct {
	TotalArticles    int `json:"totalArticles"`
	RelevantArticles int `json:"relevantArticles"`
	RelevanceRate    int `json:"relevanceRate"`
	TopicClusters    int `json:"topicClusters"`
	HighPriority     int `json:"highPriority"`
	Districts        int `json:"districts"`
	ActiveAlerts     int `json:"activeAlerts"`
	ActionRequired   int `json:"actionRequired"`
	ArticlesChange   int `json:"articlesChange"`
}

// Overview summarises the digest and the working alert list.
func (s *State) Overview() Overview {
	d := s.Snapshot.Digest
	o := Overview{
		TotalArticles:    d.TotalArticles,
		RelevantArticles: d.RelevantArticles,
		RelevanceRate:    d.RelevanceRate(),
		TopicClusters:    len(d.TopicClusters),
		Districts:        len(d.Districts),
		ActiveAlerts:     len(s.alerts),
		ArticlesChange:   d.WeeklyComparison.ArticlesChange,
	}
	for _, c := range d.TopicClusters {
		if c.Priority == domain.PriorityHigh {
			o.HighPriority++
		}
	}
	for _, a := range s.alerts {
		if a.ActionRequired {
			o.ActionRequired++
		}
	}
	return o
}

// DistrictAnalytics counts clustered articles per district in the order of
// the digest's district list. Top districts of a growing week trend up,
// the rest of a shrinking week trend down, everything else is stable.
func DistrictAnalytics(d domain.DailyDigest) []domain.DistrictStats {
	index := make(map[string]int, len(d.Districts))
	out := make([]domain.DistrictStats, len(d.Districts))
	for i, name := range d.Districts {
		index[name] = i
		out[i] = domain.DistrictStats{District: name, Trend: domain.TrendStable}
	}

	for _, c := range d.TopicClusters {
		for _, a := range c.Articles {
			i, ok := index[a.District]
			if !ok {
				continue
			}
			out[i].TotalIncidents++
			switch a.Priority {
			case domain.PriorityHigh:
				out[i].PriorityBreakdown.High++
			case domain.PriorityMedium:
				out[i].PriorityBreakdown.Medium++
			case domain.PriorityLow:
				out[i].PriorityBreakdown.Low++
			}
		}
	}

	change := d.WeeklyComparison.ArticlesChange
	for i := range out {
		top := slices.Contains(d.WeeklyComparison.TopDistricts, out[i].District)
		switch {
		case change > 0 && top:
			out[i].Trend = domain.TrendIncreasing
		case change < 0 && !top:
			out[i].Trend = domain.TrendDecreasing
		}
	}
	return out
}
