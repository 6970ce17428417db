package domain

import "time"

// NewsArticle is a single monitored news item. Immutable once generated.
type NewsArticle struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"publishedAt"`
	URL            string    `json:"url"`
	RelevanceScore int       `json:"relevanceScore"`
	District       string    `json:"district"`
	Category       string    `json:"category"`
	Priority       Priority  `json:"priority"`
	Keywords       []string  `json:"keywords"`
	Sentiment      Sentiment `json:"sentiment"`
}

// RelevanceThreshold is the score an article must exceed to count as relevant.
const RelevanceThreshold = 70

// Relevant reports whether the article passes the relevance threshold.
func (a NewsArticle) Relevant() bool {
	return a.RelevanceScore > RelevanceThreshold
}

// ClusterTrends summarises coverage of a cluster.
type ClusterTrends struct {
	Sentiment   Sentiment `json:"sentiment"`
	Coverage    int       `json:"coverage"`
	Sources     []string  `json:"sources"`
	WeeklyTrend Trend     `json:"weeklyTrend"`
}

// TopicCluster groups related articles under a shared summary.
type TopicCluster struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Summary           string        `json:"summary"`
	Priority          Priority      `json:"priority"`
	RiskLevel         RiskLevel     `json:"riskLevel"`
	AffectedDistricts []string      `json:"affectedDistricts"`
	Articles          []NewsArticle `json:"articles"`
	RelatedArticles   []NewsArticle `json:"relatedArticles"`
	Trends            ClusterTrends `json:"trends"`
	ActionItems       []string      `json:"actionItems,omitempty"`
}
