package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"frigoo-backend/domain"
	"frigoo-backend/entities"
	"frigoo-backend/pkg/fridge"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest) (domain.GeneratedRecipe, error)
		GetCatalogSuggestions(ctx context.Context, userID string) (domain.SuggestionsResponse, error)
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error)
		UnsaveRecipe(ctx context.Context, req domain.UnsaveRecipeRequest, userID string) error
		GetSavedRecipes(ctx context.Context, page, limit int, userID string) ([]domain.SavedRecipeResponse, int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		fridgeRepository fridge.FridgeRepository
		generator        RecipeGenerator
		generateGroup    singleflight.Group
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fridgeRepository fridge.FridgeRepository, generator RecipeGenerator) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		fridgeRepository: fridgeRepository,
		generator:        generator,
	}
}

// GenerateRecipe funnels identical concurrent requests through a single
// upstream call, so a double-clicked "generate" button cannot race two
// completions against each other.
func (s *recipeService) GenerateRecipe(ctx context.Context, req domain.GenerateRecipeRequest) (domain.GeneratedRecipe, error) {
	key := req.MealType + "|" + strings.Join(req.Items, ",")
	result, err, _ := s.generateGroup.Do(key, func() (interface{}, error) {
		return s.generator.GenerateRecipe(ctx, req.Items, req.MealType)
	})
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}
	return result.(domain.GeneratedRecipe), nil
}

func (s *recipeService) GetCatalogSuggestions(ctx context.Context, userID string) (domain.SuggestionsResponse, error) {
	items, err := s.fridgeRepository.GetFridgeItems(ctx, userID)
	if err != nil {
		return domain.SuggestionsResponse{}, err
	}

	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		ingredients = append(ingredients, strings.ToLower(item.Name))
	}

	matches := MatchCatalog(ingredients)
	suggestions := make([]domain.CatalogSuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, domain.CatalogSuggestion{
			Name:        m.Name,
			Ingredients: m.Ingredients,
			Steps:       m.Steps,
		})
	}

	return domain.SuggestionsResponse{
		Suggestions: suggestions,
		Ingredients: ingredients,
	}, nil
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	ingredientsJSON, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	stepsJSON, err := json.Marshal(req.Steps)
	if err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		MealType:    req.MealType,
		Ingredients: string(ingredientsJSON),
		Steps:       string(stepsJSON),
		Saved:       true,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	return domain.SavedRecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Description: recipe.Description,
		MealType:    recipe.MealType,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Saved:       recipe.Saved,
		CreatedAt:   recipe.CreatedAt,
	}, nil
}

func (s *recipeService) UnsaveRecipe(ctx context.Context, req domain.UnsaveRecipeRequest, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.SetRecipeSaved(ctx, req.RecipeID, false)
}

func (s *recipeService) GetSavedRecipes(ctx context.Context, page, limit int, userID string) ([]domain.SavedRecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetSavedRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.SavedRecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		var ingredients []domain.RecipeIngredient
		if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
			ingredients = nil
		}

		var steps []string
		if err := json.Unmarshal([]byte(recipe.Steps), &steps); err != nil {
			steps = nil
		}

		result = append(result, domain.SavedRecipeResponse{
			ID:          recipe.ID.String(),
			Title:       recipe.Title,
			Description: recipe.Description,
			MealType:    recipe.MealType,
			Ingredients: ingredients,
			Steps:       steps,
			Saved:       recipe.Saved,
			CreatedAt:   recipe.CreatedAt,
		})
	}

	return result, count, nil
}
