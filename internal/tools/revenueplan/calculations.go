package revenueplan

import (
	"fmt"
	"math"
)

// weeksPerMonth is the average used to convert monthly bookings into
// weekly hours.
const weeksPerMonth = 4.33

func CurrentMonthlyRevenue(services []Service) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Price * float64(s.CurrentMonthlyBookings)
	}
	return total
}

// TotalCurrentWeeklyHours converts booked monthly minutes into weekly
// hours, rounded to two decimals.
func TotalCurrentWeeklyHours(services []Service) float64 {
	minutesPerWeek := 0.0
	for _, s := range services {
		minutesPerMonth := float64(s.DurationMinutes * s.CurrentMonthlyBookings)
		minutesPerWeek += minutesPerMonth / weeksPerMonth
	}
	return round2(minutesPerWeek / 60)
}

func RevenuePerHour(revenue, hours float64) float64 {
	if hours == 0 {
		return 0
	}
	return round2(revenue / hours)
}

// CapacityUtilization is the current load as a whole percentage of the
// configured maximum weekly hours.
func CapacityUtilization(currentHours, maxHours float64) int {
	if maxHours == 0 {
		return 0
	}
	return int(math.Round(currentHours / maxHours * 100))
}

// ProjectedGrowth compares current against target monthly revenue; growth
// above 200% is flagged as unrealistic.
func ProjectedGrowth(currentRevenue, targetRevenue float64) GrowthProjection {
	amount := targetRevenue - currentRevenue
	percentage := 0.0
	if currentRevenue > 0 {
		percentage = amount / currentRevenue * 100
	}
	return GrowthProjection{
		GrowthAmount:     round2(amount),
		GrowthPercentage: round2(percentage),
		IsRealistic:      percentage <= 200,
	}
}

// ValidateServiceDependencies checks that every touch-up and refresher
// points at an existing first-session parent.
func ValidateServiceDependencies(services []Service) []string {
	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	var errs []string
	for _, s := range services {
		if s.ServiceType != ServiceTouchUp && s.ServiceType != ServiceRefresher {
			continue
		}
		if s.ParentServiceID == "" {
			errs = append(errs, fmt.Sprintf("%s requires a parent service selection", s.Name))
			continue
		}
		parent, ok := byID[s.ParentServiceID]
		if !ok {
			errs = append(errs, fmt.Sprintf("Parent service not found for %s", s.Name))
			continue
		}
		if parent.ServiceType != ServiceFirstSession {
			errs = append(errs, fmt.Sprintf("Parent service for %s must be a first session", s.Name))
		}
	}
	return errs
}

// WorkloadWarnings flags sustainability problems with a target revenue
// against the configured weekly hours.
func WorkloadWarnings(weeklyHours, targetRevenue, currentRevenue float64) []string {
	var warnings []string

	if weeklyHours > 50 {
		warnings = append(warnings, "Working over 50 hours per week may lead to burnout")
	}

	if weeklyHours > 0 && targetRevenue/(weeklyHours*weeksPerMonth) < 50 {
		warnings = append(warnings, "Revenue per hour seems low. Consider raising prices.")
	}

	if currentRevenue > 0 && targetRevenue/currentRevenue > 2 && weeklyHours > 40 {
		warnings = append(warnings, "Doubling revenue while working full-time may be challenging")
	}

	return warnings
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
