package reviewlinks

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLink holds one user's review-link setup for Google My Business and
// Facebook. One row per user, upserted on every save.
type ReviewLink struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	GMBBusinessName    string    `gorm:"size:255" json:"gmb_business_name"`
	GMBPlaceID         string    `gorm:"size:255" json:"gmb_place_id"`
	GMBReviewLink      string    `gorm:"type:text" json:"gmb_review_link"`
	GMBCompleted       bool      `gorm:"default:false" json:"gmb_completed"`
	FacebookPageName   string    `gorm:"size:255" json:"facebook_page_name"`
	FacebookReviewLink string    `gorm:"type:text" json:"facebook_review_link"`
	FacebookCompleted  bool      `gorm:"default:false" json:"facebook_completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// --- DTOs ---

type SaveRequest struct {
	GMBBusinessName    *string `json:"gmb_business_name"`
	GMBPlaceID         *string `json:"gmb_place_id"`
	GMBReviewLink      *string `json:"gmb_review_link"`
	GMBCompleted       *bool   `json:"gmb_completed"`
	FacebookPageName   *string `json:"facebook_page_name"`
	FacebookReviewLink *string `json:"facebook_review_link"`
	FacebookCompleted  *bool   `json:"facebook_completed"`
}
