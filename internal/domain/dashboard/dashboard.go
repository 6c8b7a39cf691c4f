package dashboard

import (
	"context"
	"strings"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
)

// Color is a traffic light colour.
type Color string

const (
	ColorGray   Color = "gray"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
)

var statusColors = map[string]Color{
	"not_started": ColorGray,
	"draft":       ColorGray,
	"inactive":    ColorGray,
	"new":         ColorGray,

	"in_progress":       ColorYellow,
	"pending_review":    ColorYellow,
	"awaiting":          ColorYellow,
	"documents_pending": ColorYellow,
	"in_review":         ColorYellow,
	"submitted":         ColorYellow,

	"completed": ColorGreen,
	"approved":  ColorGreen,
	"active":    ColorGreen,
	"paid":      ColorGreen,

	"blocked":  ColorRed,
	"rejected": ColorRed,
	"failed":   ColorRed,
	"overdue":  ColorRed,
	"denied":   ColorRed,
}

// StatusColor maps any status string to its traffic light colour; unknown values are gray.
func StatusColor(status string) Color {
	if c, ok := statusColors[strings.ToLower(strings.TrimSpace(status))]; ok {
		return c
	}
	return ColorGray
}

// StatusLabel turns "documents_pending" into "Documents Pending".
func StatusLabel(status string) string {
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(status), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Metrics holds the counters of one dashboard. Unused fields stay zero for other roles.
type Metrics struct {
	TotalUsers     int64       `json:"totalUsers,omitempty"`
	TotalCases     int64       `json:"totalCases"`
	ActiveCases    int64       `json:"activeCases"`
	PendingCases   int64       `json:"pendingCases,omitempty"`
	CompletedCases int64       `json:"completedCases,omitempty"`
	CurrentCase    *cases.Case `json:"-"`
}

// Overview is a role's dashboard: where it lives and what it shows.
type Overview struct {
	Role          users.Role
	DashboardPath string
	Metrics       Metrics
}

// DashboardService computes dashboard metrics for an actor.
type DashboardService interface {
	Overview(ctx context.Context, actor *users.Actor) (*Overview, error)
}
