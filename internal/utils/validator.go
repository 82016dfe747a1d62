package utils

import (
	"frigoo-backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("foodtype", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, foodType := range domain.FoodTypes {
			if value == foodType {
				return true
			}
		}
		return false
	})

	_ = Validate.RegisterValidation("mealtype", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, mealType := range domain.MealTypes {
			if value == mealType {
				return true
			}
		}
		return false
	})
}
