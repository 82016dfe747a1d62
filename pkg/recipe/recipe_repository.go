package recipe

import (
	"context"

	"frigoo-backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error)
		SetRecipeSaved(ctx context.Context, id string, saved bool) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetSavedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ? AND saved = ?", userID, true)

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// SetRecipeSaved touches the saved column only. Title, ingredients and steps
// of a persisted recipe are immutable.
func (r *recipeRepository) SetRecipeSaved(ctx context.Context, id string, saved bool) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"saved": saved}).Error
}
