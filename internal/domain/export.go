package domain

import "time"

// ExportStatus enumerates report export milestones.
type ExportStatus string

const (
	ExportRendered  ExportStatus = "rendered"
	ExportSaved     ExportStatus = "saved"
	ExportDelivered ExportStatus = "delivered"
)

// ExportRecord is the archived trace of one exported report.
type ExportRecord struct {
	ID          string       `json:"id"`
	ReportDate  string       `json:"reportDate"`
	FileName    string       `json:"fileName"`
	FilePath    string       `json:"filePath"`
	Pages       int          `json:"pages"`
	Clusters    int          `json:"clusters"`
	Alerts      int          `json:"alerts"`
	Status      ExportStatus `json:"status"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// DistrictStats is the per-district analytics row shown on the dashboard.
type DistrictStats struct {
	District          string               `json:"district"`
	TotalIncidents    int                  `json:"totalIncidents"`
	PriorityBreakdown PriorityDistribution `json:"priorityBreakdown"`
	Trend             Trend                `json:"trend"`
}
