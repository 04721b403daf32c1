package revenueplan

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RevenuePlan persists one user's wizard state as an opaque JSON document.
// The server only interprets the pieces the summary calculations need.
type RevenuePlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Data      datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Service types mirror the wizard's service configuration step.
const (
	ServiceOneTime       = "one_time"
	ServiceFirstSession  = "first_session"
	ServiceTouchUp       = "touch_up"
	ServiceRefresher     = "refresher"
	ServiceLashExtension = "lash_extension"
	ServiceCustom        = "custom"
)

type Service struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Price                  float64 `json:"price"`
	DurationMinutes        int     `json:"duration_minutes"`
	ServiceType            string  `json:"service_type"`
	ParentServiceID        string  `json:"parent_service_id,omitempty"`
	PreferenceRating       int     `json:"preference_rating"`
	CurrentMonthlyBookings int     `json:"current_monthly_bookings"`
}

type OperatingHours struct {
	HoursPerWeek       float64 `json:"hours_per_week"`
	HoursPerDay        float64 `json:"hours_per_day,omitempty"`
	WorkingDaysPerWeek int     `json:"working_days_per_week"`
}

// --- DTOs ---

type SummaryRequest struct {
	Services       []Service      `json:"services"`
	OperatingHours OperatingHours `json:"operating_hours"`
	TargetRevenue  float64        `json:"target_revenue"`
}

type GrowthProjection struct {
	GrowthAmount     float64 `json:"growth_amount"`
	GrowthPercentage float64 `json:"growth_percentage"`
	IsRealistic      bool    `json:"is_realistic"`
}

type SummaryResponse struct {
	CurrentMonthlyRevenue float64          `json:"current_monthly_revenue"`
	CurrentWeeklyHours    float64          `json:"current_weekly_hours"`
	RevenuePerHour        float64          `json:"revenue_per_hour"`
	CapacityUtilization   int              `json:"capacity_utilization"`
	ProjectedGrowth       GrowthProjection `json:"projected_growth"`
	ValidationErrors      []string         `json:"validation_errors"`
	Warnings              []string         `json:"warnings"`
}
