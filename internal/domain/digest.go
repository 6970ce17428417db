package domain

import (
	"math"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// AllDistricts may be referenced by alerts and clusters in place of a district name.
const AllDistricts = "All Districts"

// DateLayout is the ISO date format used for digest dates and file names.
const DateLayout = "2006-01-02"

// Alert is a time-stamped, prioritized notice.
type Alert struct {
	ID             string    `json:"id"`
	Type           AlertType `json:"type"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Priority       Priority  `json:"priority"`
	Districts      []string  `json:"districts"`
	Timestamp      time.Time `json:"timestamp"`
	ActionRequired bool      `json:"actionRequired"`
}

// WeatherImpact correlates the day's weather with expected incident load.
type WeatherImpact struct {
	Condition        string      `json:"condition"`
	Temperature      float64     `json:"temperature"`
	Description      string      `json:"description"`
	CrimeCorrelation Correlation `json:"crimeCorrelation"`
	Recommendations  []string    `json:"recommendations"`
}

// PriorityDistribution counts items per priority.
type PriorityDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// WeeklyComparison compares the digest date with the trailing week.
type WeeklyComparison struct {
	ArticlesChange       int                  `json:"articlesChange"`
	PriorityDistribution PriorityDistribution `json:"priorityDistribution"`
	TopDistricts         []string             `json:"topDistricts"`
}

// DailyDigest is the aggregate for one date.
type DailyDigest struct {
	Date             string           `json:"date"`
	TotalArticles    int              `json:"totalArticles"`
	RelevantArticles int              `json:"relevantArticles"`
	TopicClusters    []TopicCluster   `json:"topicClusters"`
	Districts        []string         `json:"districts"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	WeeklyComparison WeeklyComparison `json:"weeklyComparison"`
	WeatherImpact    *WeatherImpact   `json:"weatherImpact,omitempty"`
	Alerts           []Alert          `json:"alerts"`
}

// Day parses Date; the zero time is returned for malformed dates.
func (d DailyDigest) Day() time.Time {
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RelevanceRate is relevant/total as a rounded percentage.
func (d DailyDigest) RelevanceRate() int {
	if d.TotalArticles <= 0 {
		return 0
	}
	return int(math.Round(float64(d.RelevantArticles) / float64(d.TotalArticles) * 100))
}

// Validate checks the digest invariants.
func (d DailyDigest) Validate() error {
	if d.RelevantArticles > d.TotalArticles {
		return goerr.New("relevant articles exceed total",
			goerr.V("relevant", d.RelevantArticles),
			goerr.V("total", d.TotalArticles))
	}

	for _, cluster := range d.TopicClusters {
		for _, district := range cluster.AffectedDistricts {
			if !d.coversDistrict(district) {
				return goerr.New("cluster references unknown district",
					goerr.V("cluster", cluster.ID), goerr.V("district", district))
			}
		}
	}

	for _, alert := range d.Alerts {
		for _, district := range alert.Districts {
			if !d.coversDistrict(district) {
				return goerr.New("alert references unknown district",
					goerr.V("alert", alert.ID), goerr.V("district", district))
			}
		}
	}

	return nil
}

func (d DailyDigest) coversDistrict(name string) bool {
	return name == AllDistricts || slices.Contains(d.Districts, name)
}

// Snapshot is the render input: a digest plus the working alert list.
type Snapshot struct {
	Digest     DailyDigest `json:"digest"`
	Alerts     []Alert     `json:"alerts"`
	Generation uint64      `json:"generation"`
}

// ProcessingStatus is one step of the simulated processing sequence.
type ProcessingStatus struct {
	Step       string `json:"step"`
	Progress   int    `json:"progress"`
	IsComplete bool   `json:"isComplete"`
	Error      string `json:"error,omitempty"`
}
