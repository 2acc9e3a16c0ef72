package handler

type voteRequest struct {
	Day  string `json:"day"  validate:"required"`
	Meal string `json:"meal" validate:"required"`
	Dish string `json:"dish" validate:"required,max=200"`
}

type checkVoteRequest struct {
	Day  string `json:"day"  validate:"required"`
	Meal string `json:"meal" validate:"required"`
}

type feedbackRequest struct {
	Type    string `json:"feedback_type"`
	Message string `json:"message" validate:"required,max=2000"`
	Rating  *int   `json:"rating"  validate:"omitempty,min=1,max=5"`
}

type complaintRequest struct {
	Category string   `json:"category" validate:"required,max=100"`
	Message  string   `json:"message"  validate:"required,max=2000"`
	Urgency  string   `json:"urgency"  validate:"omitempty,oneof=low medium high urgent"`
	Photos   []string `json:"photos"   validate:"omitempty,max=5"`
}

type suggestionRequest struct {
	DishName    string `json:"dish_name"   validate:"required,max=200"`
	MealType    string `json:"meal_type"   validate:"omitempty"`
	Ingredients string `json:"ingredients" validate:"omitempty,max=1000"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type complaintStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
