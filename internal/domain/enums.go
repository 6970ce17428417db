package domain

// Priority ranks articles, clusters and alerts.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// RiskLevel grades the operational risk of a cluster.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// Sentiment of an article or of cluster coverage.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Trend describes week-over-week movement.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

func (t Trend) Valid() bool {
	switch t {
	case TrendIncreasing, TrendDecreasing, TrendStable:
		return true
	}
	return false
}

// AlertType enumerates alert origins.
type AlertType string

const (
	AlertBreaking   AlertType = "breaking"
	AlertPattern    AlertType = "pattern"
	AlertEscalation AlertType = "escalation"
	AlertWeather    AlertType = "weather"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertBreaking, AlertPattern, AlertEscalation, AlertWeather:
		return true
	}
	return false
}

// Correlation is the weather/crime correlation grade.
type Correlation string

const (
	CorrelationHigh   Correlation = "high"
	CorrelationMedium Correlation = "medium"
	CorrelationLow    Correlation = "low"
)

func (c Correlation) Valid() bool {
	switch c {
	case CorrelationHigh, CorrelationMedium, CorrelationLow:
		return true
	}
	return false
}
