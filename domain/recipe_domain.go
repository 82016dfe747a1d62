package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateRecipe  = "recipe generated successfully"
	MessageSuccessGetSuggestions  = "recipe suggestions retrieved successfully"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUnsaveRecipe    = "recipe removed from saved recipes"
	MessageSuccessGetSavedRecipes = "saved recipes retrieved successfully"

	MessageFailedGenerateRecipe  = "failed to generate recipe"
	MessageFailedGetSuggestions  = "failed to retrieve recipe suggestions"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUnsaveRecipe    = "failed to remove recipe from saved recipes"
	MessageFailedGetSavedRecipes = "failed to retrieve saved recipes"

	ErrRecipeNotFound          = errors.New("recipe not found")
	ErrEmptyIngredientList     = errors.New("empty ingredient list")
	ErrMissingMealType         = errors.New("missing meal type")
	ErrInvalidMealType         = errors.New("invalid meal type")
	ErrMistralAPIFailed        = errors.New("mistral API request failed")
	ErrMalformedRecipeResponse = errors.New("malformed response")
)

// MealTypes is the fixed enumeration a generated recipe is requested for.
var MealTypes = []string{
	"petit-déjeuner",
	"déjeuner",
	"dîner",
	"goûter",
	"dessert",
	"encas",
}

type (
	GenerateRecipeRequest struct {
		Items    []string `json:"items"`
		MealType string   `json:"mealType"`
	}

	RecipeIngredient struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity"`
	}

	// GeneratedRecipe is the shape the completion service is asked to
	// produce. MealType always reflects the requested value, not whatever
	// the upstream echoed back.
	GeneratedRecipe struct {
		Title       string             `json:"title"`
		Description string             `json:"description"`
		MealType    string             `json:"mealType"`
		Ingredients []RecipeIngredient `json:"ingredients"`
		Steps       []string           `json:"steps"`
	}

	SaveRecipeRequest struct {
		Title       string             `json:"title" validate:"required"`
		Description string             `json:"description"`
		MealType    string             `json:"mealType" validate:"required,mealtype"`
		Ingredients []RecipeIngredient `json:"ingredients" validate:"required,min=1,dive"`
		Steps       []string           `json:"steps" validate:"required,min=1"`
	}

	SavedRecipeResponse struct {
		ID          string             `json:"id"`
		Title       string             `json:"title"`
		Description string             `json:"description"`
		MealType    string             `json:"meal_type"`
		Ingredients []RecipeIngredient `json:"ingredients"`
		Steps       []string           `json:"steps"`
		Saved       bool               `json:"saved"`
		CreatedAt   time.Time          `json:"created_at"`
	}

	UnsaveRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	CatalogSuggestion struct {
		Name        string   `json:"name"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
	}

	SuggestionsResponse struct {
		Suggestions []CatalogSuggestion `json:"suggestions"`
		Ingredients []string            `json:"ingredients"`
	}
)
