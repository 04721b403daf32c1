package reviewlinks

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const gmbWriteReviewBase = "https://search.google.com/local/writereview"

// BuildGMBReviewLink derives the direct write-a-review URL for a Google
// place ID.
func BuildGMBReviewLink(placeID string) string {
	if placeID == "" {
		return ""
	}
	return gmbWriteReviewBase + "?placeid=" + url.QueryEscape(placeID)
}

type ReviewLinkService struct {
	db *gorm.DB
}

func NewReviewLinkService(db *gorm.DB) *ReviewLinkService {
	return &ReviewLinkService{db: db}
}

// Get returns the user's row, or a zero-value struct when none exists yet.
func (s *ReviewLinkService) Get(userID uuid.UUID) (*ReviewLink, error) {
	var link ReviewLink
	err := s.db.Where("user_id = ?", userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ReviewLink{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review links: %w", err)
	}
	return &link, nil
}

// Save applies the partial update and upserts on the user_id unique
// constraint. A supplied place ID without an explicit link derives the
// GMB review URL.
func (s *ReviewLinkService) Save(userID uuid.UUID, req *SaveRequest) (*ReviewLink, error) {
	link, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.GMBBusinessName != nil {
		link.GMBBusinessName = *req.GMBBusinessName
	}
	if req.GMBPlaceID != nil {
		link.GMBPlaceID = *req.GMBPlaceID
	}
	if req.GMBReviewLink != nil {
		link.GMBReviewLink = *req.GMBReviewLink
	} else if req.GMBPlaceID != nil {
		link.GMBReviewLink = BuildGMBReviewLink(*req.GMBPlaceID)
	}
	if req.GMBCompleted != nil {
		link.GMBCompleted = *req.GMBCompleted
	}
	if req.FacebookPageName != nil {
		link.FacebookPageName = *req.FacebookPageName
	}
	if req.FacebookReviewLink != nil {
		link.FacebookReviewLink = *req.FacebookReviewLink
	}
	if req.FacebookCompleted != nil {
		link.FacebookCompleted = *req.FacebookCompleted
	}

	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"gmb_business_name", "gmb_place_id", "gmb_review_link", "gmb_completed",
			"facebook_page_name", "facebook_review_link", "facebook_completed",
			"updated_at",
		}),
	}).Create(link).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save review links: %w", err)
	}
	return link, nil
}
