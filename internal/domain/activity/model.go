package activity

import "time"

// Activity is one gang's current status entry. There is at most one per
// distinct gang name; resubmitting for the same gang updates the entry in
// place instead of appending.
type Activity struct {
	ID          string     `json:"id"`
	GangName    string     `json:"gangName"`
	Type        Type       `json:"type"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
}
