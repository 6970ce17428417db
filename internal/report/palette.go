package report

import "PoliceDigest/internal/domain"

// ColorPair is the background/border/text triple of a colored box or badge.
type ColorPair struct {
	Background Color
	Border     Color
	Text       Color
}

var (
	colorBrand     = Color{30, 58, 138}
	colorInk       = Color{17, 24, 39}
	colorMuted     = Color{75, 85, 99}
	colorRule      = Color{209, 213, 219}
	colorShade     = Color{243, 244, 246}
	colorWhite     = Color{255, 255, 255}
	colorClassify  = Color{185, 28, 28}
	colorEmphasis  = Color{153, 27, 27}
	colorHeaderRow = Color{30, 58, 138}
)

var alertColors = map[domain.Priority]ColorPair{
	domain.PriorityHigh:   {Background: Color{254, 226, 226}, Border: Color{220, 38, 38}, Text: Color{127, 29, 29}},
	domain.PriorityMedium: {Background: Color{254, 243, 199}, Border: Color{217, 119, 6}, Text: Color{120, 53, 15}},
	domain.PriorityLow:    {Background: Color{219, 234, 254}, Border: Color{37, 99, 235}, Text: Color{30, 58, 138}},
}

// AlertColors picks the alert box colors; unknown priorities use the low pair.
func AlertColors(p domain.Priority) ColorPair {
	if pair, ok := alertColors[p]; ok {
		return pair
	}
	return alertColors[domain.PriorityLow]
}

var neutralBadge = ColorPair{Background: Color{229, 231, 235}, Border: Color{156, 163, 175}, Text: Color{55, 65, 81}}

var priorityBadges = map[domain.Priority]ColorPair{
	domain.PriorityHigh:   {Background: Color{254, 226, 226}, Border: Color{248, 113, 113}, Text: Color{153, 27, 27}},
	domain.PriorityMedium: {Background: Color{254, 249, 195}, Border: Color{250, 204, 21}, Text: Color{133, 77, 14}},
	domain.PriorityLow:    {Background: Color{220, 252, 231}, Border: Color{74, 222, 128}, Text: Color{22, 101, 52}},
}

var riskBadges = map[domain.RiskLevel]ColorPair{
	domain.RiskCritical: {Background: Color{127, 29, 29}, Border: Color{127, 29, 29}, Text: Color{255, 255, 255}},
	domain.RiskHigh:     {Background: Color{254, 202, 202}, Border: Color{239, 68, 68}, Text: Color{127, 29, 29}},
	domain.RiskMedium:   {Background: Color{254, 215, 170}, Border: Color{249, 115, 22}, Text: Color{124, 45, 18}},
	domain.RiskLow:      {Background: Color{209, 250, 229}, Border: Color{52, 211, 153}, Text: Color{6, 95, 70}},
}

// PriorityBadge colors a cluster priority badge; unknown values are gray.
func PriorityBadge(p domain.Priority) ColorPair {
	if pair, ok := priorityBadges[p]; ok {
		return pair
	}
	return neutralBadge
}

// RiskBadge colors a cluster risk badge; unknown values are gray.
func RiskBadge(r domain.RiskLevel) ColorPair {
	if pair, ok := riskBadges[r]; ok {
		return pair
	}
	return neutralBadge
}
