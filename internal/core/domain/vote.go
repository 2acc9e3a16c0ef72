package domain

import (
	"strings"
	"time"
)

// Day is a day of the mess week.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Meal is one of the four daily meal slots.
type Meal string

const (
	Breakfast Meal = "breakfast"
	Lunch     Meal = "lunch"
	Snacks    Meal = "snacks"
	Dinner    Meal = "dinner"
)

var validDays = map[Day]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {},
	Friday: {}, Saturday: {}, Sunday: {},
}

var validMeals = map[Meal]struct{}{
	Breakfast: {}, Lunch: {}, Snacks: {}, Dinner: {},
}

// NormalizeDay lowercases the input so that tokenization differences in case
// cannot bypass the vote uniqueness constraint.
func NormalizeDay(s string) Day {
	return Day(strings.ToLower(strings.TrimSpace(s)))
}

// NormalizeMeal lowercases the input, mirroring NormalizeDay.
func NormalizeMeal(s string) Meal {
	return Meal(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether d is one of the seven known days.
func (d Day) Valid() bool {
	_, ok := validDays[d]
	return ok
}

// Valid reports whether m is one of the four meal slots.
func (m Meal) Valid() bool {
	_, ok := validMeals[m]
	return ok
}

// Vote records a single menu vote. A vote is immutable once stored; the
// storage layer enforces that no two votes share the same (day, meal,
// identity) triple.
type Vote struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Day         Day       `json:"day" bson:"day"`
	Meal        Meal      `json:"meal" bson:"meal"`
	Dish        string    `json:"dish" bson:"dish"`
	Identity    string    `json:"user_identifier" bson:"identity"`
	IPAddress   string    `json:"ip_address" bson:"ip_address"`
	SubmittedAt time.Time `json:"timestamp" bson:"submitted_at"`
	SessionTag  string    `json:"session_id,omitempty" bson:"session_tag,omitempty"`
}

// DishCount is one row of the popular-dish ranking.
type DishCount struct {
	Dish  string `json:"dish" bson:"_id"`
	Votes int64  `json:"votes" bson:"votes"`
}
