package domain

import "time"

// Urgency grades a complaint.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// Valid reports whether u is a known urgency level.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Rank orders urgencies for listing, most pressing first.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyUrgent:
		return 1
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 3
	case UrgencyLow:
		return 4
	}
	return 5
}

// ComplaintStatus is the workflow state of a complaint.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusClosed     ComplaintStatus = "closed"
)

// Valid reports whether s is a known complaint status.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Feedback is a free-form rating of the mess, optionally scored 1–5.
type Feedback struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Type        string    `json:"feedback_type" bson:"feedback_type"`
	Message     string    `json:"message" bson:"message"`
	Rating      *int      `json:"rating,omitempty" bson:"rating,omitempty"`
	IPAddress   string    `json:"ip_address" bson:"ip_address"`
	SubmittedAt time.Time `json:"timestamp" bson:"submitted_at"`
	SessionTag  string    `json:"session_id,omitempty" bson:"session_tag,omitempty"`
}

// Complaint is a categorised issue report with a workflow status.
type Complaint struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Category    string          `json:"category" bson:"category"`
	Message     string          `json:"message" bson:"message"`
	Urgency     Urgency         `json:"urgency" bson:"urgency"`
	Status      ComplaintStatus `json:"status" bson:"status"`
	IPAddress   string          `json:"ip_address" bson:"ip_address"`
	SubmittedAt time.Time       `json:"timestamp" bson:"submitted_at"`
	SessionTag  string          `json:"session_id,omitempty" bson:"session_tag,omitempty"`
	Photos      []string        `json:"photos,omitempty" bson:"photos,omitempty"`
}

// Suggestion proposes a dish for the menu.
type Suggestion struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	DishName    string    `json:"dish_name" bson:"dish_name"`
	MealType    Meal      `json:"meal_type" bson:"meal_type"`
	Ingredients string    `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	IPAddress   string    `json:"ip_address" bson:"ip_address"`
	SubmittedAt time.Time `json:"timestamp" bson:"submitted_at"`
	SessionTag  string    `json:"session_id,omitempty" bson:"session_tag,omitempty"`
}
