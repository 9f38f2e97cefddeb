package utils

import (
	"gamereviews/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateReviewInput checks a review payload and returns the message the
// API sends back on the first violation, or "" when the input is valid.
// Missing-field violations take priority over range violations, matching
// the order clients expect the messages in.
func ValidateReviewInput(input models.ReviewInput) string {
	err := validate.Struct(input)
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	for _, e := range validationErrors {
		if e.Tag() != "required" {
			continue
		}
		if e.Field() == "Rating" {
			return "Please give your rating"
		}
		return "All fields are required!"
	}

	for _, e := range validationErrors {
		switch e.Field() {
		case "Title":
			return "Title must be between 5 and 100 characters."
		case "ReviewContent":
			return "Review content must be between 20 and 1000 characters."
		case "Rating":
			return "rating must be an integer between 1 and 5"
		}
	}

	return "invalid input"
}
