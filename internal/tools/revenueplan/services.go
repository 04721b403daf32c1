package revenueplan

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevenuePlanService struct {
	db *gorm.DB
}

func NewRevenuePlanService(db *gorm.DB) *RevenuePlanService {
	return &RevenuePlanService{db: db}
}

// Get returns the user's saved plan, or an empty document when none
// exists yet.
func (s *RevenuePlanService) Get(userID uuid.UUID) (*RevenuePlan, error) {
	var plan RevenuePlan
	err := s.db.Where("user_id = ?", userID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &RevenuePlan{UserID: userID, Data: datatypes.JSON([]byte("{}"))}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch revenue plan: %w", err)
	}
	return &plan, nil
}

// Save upserts the user's wizard state on the user_id unique constraint.
func (s *RevenuePlanService) Save(userID uuid.UUID, data []byte) (*RevenuePlan, error) {
	plan := RevenuePlan{
		ID:     uuid.New(),
		UserID: userID,
		Data:   datatypes.JSON(data),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&plan).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save revenue plan: %w", err)
	}
	return &plan, nil
}

// Summarize runs the full calculation set over a wizard snapshot.
func Summarize(req *SummaryRequest) *SummaryResponse {
	revenue := CurrentMonthlyRevenue(req.Services)
	weeklyHours := TotalCurrentWeeklyHours(req.Services)

	return &SummaryResponse{
		CurrentMonthlyRevenue: revenue,
		CurrentWeeklyHours:    weeklyHours,
		RevenuePerHour:        RevenuePerHour(revenue, weeklyHours*weeksPerMonth),
		CapacityUtilization:   CapacityUtilization(weeklyHours, req.OperatingHours.HoursPerWeek),
		ProjectedGrowth:       ProjectedGrowth(revenue, req.TargetRevenue),
		ValidationErrors:      ValidateServiceDependencies(req.Services),
		Warnings:              WorkloadWarnings(req.OperatingHours.HoursPerWeek, req.TargetRevenue, revenue),
	}
}
