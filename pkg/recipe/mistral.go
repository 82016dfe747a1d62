package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"frigoo-backend/domain"
	"frigoo-backend/internal/utils"
)

const defaultMistralURL = "https://api.mistral.ai/v1/chat/completions"

const recipeSystemPrompt = "Tu es un assistant culinaire. Réponds toujours en JSON avec la structure suivante : " +
	`{ "title": string, "description": string, "mealType": string, "ingredients": [ { "name": string, "quantity": string } ], "steps": [string] }. ` +
	"Donne des quantités et une recette claire."

type (
	// RecipeGenerator delegates recipe generation to an external chat
	// completion service. One request, one parsed recipe or one error; no
	// retries, no caching, no streaming.
	RecipeGenerator interface {
		GenerateRecipe(ctx context.Context, items []string, mealType string) (domain.GeneratedRecipe, error)
	}

	mistralClient struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model          string        `json:"model"`
		Messages       []chatMessage `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}

	chatResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

func NewMistralClient() RecipeGenerator {
	return &mistralClient{
		apiKey:     utils.GetConfig("MISTRAL_API_KEY"),
		model:      utils.GetConfig("MISTRAL_MODEL"),
		baseURL:    defaultMistralURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *mistralClient) GenerateRecipe(ctx context.Context, items []string, mealType string) (domain.GeneratedRecipe, error) {
	if err := validateGenerateInput(items, mealType); err != nil {
		return domain.GeneratedRecipe{}, err
	}

	if m.apiKey == "" {
		return domain.GeneratedRecipe{}, fmt.Errorf("MISTRAL_API_KEY not configured")
	}

	model := m.model
	if model == "" {
		model = "mistral-small"
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: recipeSystemPrompt},
			{Role: "user", Content: buildRecipePrompt(items, mealType)},
		},
	}
	body.ResponseFormat.Type = "json_object"

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.baseURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.GeneratedRecipe{}, err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return domain.GeneratedRecipe{}, fmt.Errorf("%w: %v", domain.ErrMistralAPIFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("mistral API error: %s - %s", resp.Status, string(bodyBytes))
		return domain.GeneratedRecipe{}, fmt.Errorf("%w: %s", domain.ErrMistralAPIFailed, resp.Status)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return domain.GeneratedRecipe{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecipeResponse, err)
	}

	if len(chatResp.Choices) == 0 {
		return domain.GeneratedRecipe{}, domain.ErrMalformedRecipeResponse
	}

	return parseRecipeContent(chatResp.Choices[0].Message.Content, mealType)
}

func validateGenerateInput(items []string, mealType string) error {
	if len(items) == 0 {
		return domain.ErrEmptyIngredientList
	}
	if mealType == "" {
		return domain.ErrMissingMealType
	}
	for _, known := range domain.MealTypes {
		if mealType == known {
			return nil
		}
	}
	return domain.ErrInvalidMealType
}

func buildRecipePrompt(items []string, mealType string) string {
	return fmt.Sprintf(
		"Voici les ingrédients dans mon frigo : %s. Je veux une recette pour %s. Donne-moi une recette simple avec une description.",
		strings.Join(items, ", "),
		mealType,
	)
}

// parseRecipeContent validates the completion payload against the expected
// recipe shape. The upstream's echo of mealType is not trusted: the result
// always carries the requested one.
func parseRecipeContent(content string, mealType string) (domain.GeneratedRecipe, error) {
	var generated domain.GeneratedRecipe
	if err := json.Unmarshal([]byte(content), &generated); err != nil {
		return domain.GeneratedRecipe{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecipeResponse, err)
	}

	if generated.Title == "" || len(generated.Ingredients) == 0 || len(generated.Steps) == 0 {
		return domain.GeneratedRecipe{}, domain.ErrMalformedRecipeResponse
	}

	generated.MealType = mealType
	return generated, nil
}
