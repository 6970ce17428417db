package mockdata

import "PoliceDigest/internal/domain"

var (
	sources    = []string{"The Tribune", "Daily Herald", "Metro News", "City Chronicle", "Regional Times"}
	districts  = []string{"Downtown", "North District", "South District", "East District", "West District"}
	categories = []string{"Crime", "Traffic", "Public Safety", "Community Events", "Emergency Response", "Investigation"}
	keywords   = []string{"incident", "investigation", "community", "safety", "response"}

	priorities = []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}
	riskLevels = []domain.RiskLevel{domain.RiskLow, domain.RiskMedium, domain.RiskHigh, domain.RiskCritical}
	sentiments = []domain.Sentiment{domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative}
	trends     = []domain.Trend{domain.TrendIncreasing, domain.TrendDecreasing, domain.TrendStable}
)

var articleTitles = []string{
	"Traffic Incident Causes Major Delays on Highway 101",
	"Community Policing Initiative Shows Positive Results",
	"Drug Investigation Leads to Multiple Arrests",
	"Emergency Response Training Exercise Scheduled",
	"Neighborhood Watch Program Expands Coverage",
	"Vehicle Theft Ring Dismantled After Joint Operation",
	"Public Safety Meeting Addresses Community Concerns",
	"New Technology Enhances Crime Scene Investigation",
	"Youth Outreach Program Celebrates Success Stories",
	"Cybersecurity Awareness Campaign Launched",
}

var articleContents = []string{
	"Comprehensive analysis reveals significant patterns in recent incidents requiring coordinated response from multiple units.",
	"Community engagement initiatives demonstrate measurable improvement in public safety metrics across affected areas.",
	"Investigation spanning multiple jurisdictions results in coordinated arrests and seizure of illegal substances.",
	"Specialized training programs enhance department capabilities in emergency response and crisis management.",
	"Collaborative community programs strengthen relationships between law enforcement and local residents.",
	"Multi-agency operation successfully targets organized criminal activity affecting regional security.",
	"Public forums provide valuable feedback on safety concerns and department priorities.",
	"Advanced investigative tools improve evidence collection and case resolution rates.",
	"Educational outreach programs create positive interactions with community youth.",
	"Cybersecurity initiatives protect citizens from digital threats and online fraud.",
}

// clusterTitles and clusterSummaries are paired by index.
var clusterTitles = []string{
	"Traffic Safety Operations",
	"Community Engagement Initiatives",
	"Criminal Investigation Updates",
	"Emergency Response Activities",
	"Public Safety Measures",
	"Technology Implementation",
	"Inter-agency Cooperation",
	"Training and Development",
}

var clusterSummaries = []string{
	"Coordinated efforts across multiple districts addressing traffic safety concerns with measurable improvements in incident response times.",
	"Community outreach programs demonstrate positive engagement between law enforcement and local residents.",
	"Ongoing investigations reveal patterns requiring enhanced surveillance and coordinated response strategies.",
	"Emergency preparedness exercises and real-world responses showcase department capabilities and areas for improvement.",
	"Proactive measures implemented to enhance public safety infrastructure and community protection protocols.",
	"Technology integration improves operational efficiency and evidence management across departments.",
	"Multi-jurisdiction collaboration enhances resource sharing and coordinated response capabilities.",
	"Professional development initiatives strengthen officer capabilities and community relations.",
}

var actionItems = []string{
	"Increase patrol presence in affected districts during peak hours",
	"Coordinate with traffic management for diversion planning",
	"Brief station house officers at the evening roll call",
	"Share suspect descriptions with neighboring jurisdictions",
	"Schedule a community liaison meeting within 48 hours",
	"Review CCTV coverage near reported hotspots",
	"Issue a public advisory through official social media channels",
	"Assign a dedicated investigation team to the case cluster",
}

type weatherPreset struct {
	condition       string
	minTemp         int
	description     string
	correlation     domain.Correlation
	recommendations []string
}

var weatherPresets = []weatherPreset{
	{
		condition:   "Clear skies",
		minTemp:     28,
		description: "Warm, clear weather typically brings higher footfall in markets and public spaces.",
		correlation: domain.CorrelationHigh,
		recommendations: []string{
			"Increase foot patrols in commercial areas",
			"Monitor crowded public gatherings",
		},
	},
	{
		condition:   "Heavy rain",
		minTemp:     22,
		description: "Rainfall reduces street activity but raises the risk of traffic accidents and waterlogging.",
		correlation: domain.CorrelationMedium,
		recommendations: []string{
			"Deploy traffic personnel at flood-prone junctions",
			"Keep disaster response teams on standby",
		},
	},
	{
		condition:       "Overcast",
		minTemp:         24,
		description:     "Mild conditions with no significant expected effect on incident rates.",
		correlation:     domain.CorrelationLow,
		recommendations: []string{"Maintain routine patrol schedules"},
	},
	{
		condition:   "Heat wave",
		minTemp:     38,
		description: "Extreme heat is associated with elevated tempers and a rise in public disturbances.",
		correlation: domain.CorrelationHigh,
		recommendations: []string{
			"Ensure hydration points for officers on duty",
			"Watch for disputes at water distribution points",
			"Rotate outdoor duty shifts more frequently",
		},
	},
}

type alertPreset struct {
	alertType   domain.AlertType
	title       string
	description string
}

var alertPresets = []alertPreset{
	{domain.AlertBreaking, "Major Traffic Accident Reported", "Multi-vehicle collision blocking two lanes; emergency services en route and diversions advised."},
	{domain.AlertBreaking, "Armed Robbery at Jewellery Store", "Two suspects fled on a motorcycle; descriptions circulated to all patrol units."},
	{domain.AlertPattern, "Vehicle Theft Pattern Identified", "Five two-wheeler thefts near transit hubs in the past 72 hours suggest an organized group."},
	{domain.AlertPattern, "Rise in Online Fraud Complaints", "Reports of fake delivery messages requesting payment have doubled this week."},
	{domain.AlertEscalation, "Protest Expected to Grow", "Local organizers have called for a larger gathering near the collectorate tomorrow morning."},
	{domain.AlertEscalation, "Land Dispute Tensions Rising", "Repeated confrontations between two groups reported; risk of violence if unaddressed."},
	{domain.AlertWeather, "Heavy Rainfall Warning", "Meteorological department forecasts intense rainfall over the next 24 hours."},
}
