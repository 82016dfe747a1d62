package recipe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frigoo-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMistralClient(serverURL string) *mistralClient {
	return &mistralClient{
		apiKey:     "test-key",
		model:      "mistral-small",
		baseURL:    serverURL,
		httpClient: http.DefaultClient,
	}
}

func chatEnvelope(t *testing.T, content interface{}) []byte {
	t.Helper()
	contentJSON, err := json.Marshal(content)
	require.NoError(t, err)

	envelope := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": string(contentJSON)}},
		},
	}
	envelopeJSON, err := json.Marshal(envelope)
	require.NoError(t, err)
	return envelopeJSON
}

func TestValidateGenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		mealType string
		expected error
	}{
		{"no items", nil, "dîner", domain.ErrEmptyIngredientList},
		{"no meal type", []string{"tomate"}, "", domain.ErrMissingMealType},
		{"unknown meal type", []string{"tomate"}, "brunch", domain.ErrInvalidMealType},
		{"valid", []string{"tomate"}, "dîner", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGenerateInput(tt.items, tt.mealType)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestGenerateRecipe(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistral-small", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "tomate, oeuf")
		assert.Contains(t, req.Messages[1].Content, "dîner")

		w.Write(chatEnvelope(t, map[string]interface{}{
			"title":       "Omelette aux tomates",
			"description": "Une omelette simple et rapide.",
			"mealType":    "dessert",
			"ingredients": []map[string]string{{"name": "tomate", "quantity": "2"}, {"name": "oeuf", "quantity": "3"}},
			"steps":       []string{"Battre les œufs", "Cuire avec les tomates"},
		}))
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	recipe, err := client.GenerateRecipe(context.Background(), []string{"tomate", "oeuf"}, "dîner")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Omelette aux tomates", recipe.Title)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "tomate", recipe.Ingredients[0].Name)
	assert.Equal(t, "dîner", recipe.MealType, "the requested meal type wins over the upstream echo")
}

func TestGenerateRecipeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	_, err := client.GenerateRecipe(context.Background(), []string{"tomate"}, "dîner")

	assert.ErrorIs(t, err, domain.ErrMistralAPIFailed)
}

func TestGenerateRecipeNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	_, err := client.GenerateRecipe(context.Background(), []string{"tomate"}, "dîner")

	assert.ErrorIs(t, err, domain.ErrMalformedRecipeResponse)
}

func TestGenerateRecipeInvalidInputSkipsUpstream(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestMistralClient(server.URL)
	_, err := client.GenerateRecipe(context.Background(), nil, "dîner")

	assert.ErrorIs(t, err, domain.ErrEmptyIngredientList)
	assert.False(t, called)
}

func TestParseRecipeContent(t *testing.T) {
	t.Run("missing steps", func(t *testing.T) {
		content := `{"title": "Omelette", "ingredients": [{"name": "oeuf", "quantity": "3"}], "steps": []}`
		_, err := parseRecipeContent(content, "dîner")
		assert.ErrorIs(t, err, domain.ErrMalformedRecipeResponse)
	})

	t.Run("missing title", func(t *testing.T) {
		content := `{"ingredients": [{"name": "oeuf", "quantity": "3"}], "steps": ["Cuire"]}`
		_, err := parseRecipeContent(content, "dîner")
		assert.ErrorIs(t, err, domain.ErrMalformedRecipeResponse)
	})

	t.Run("not JSON", func(t *testing.T) {
		_, err := parseRecipeContent("Voici votre recette : ...", "dîner")
		assert.ErrorIs(t, err, domain.ErrMalformedRecipeResponse)
	})

	t.Run("meal type overwritten", func(t *testing.T) {
		content := `{"title": "Omelette", "mealType": "dessert", "ingredients": [{"name": "oeuf", "quantity": "3"}], "steps": ["Cuire"]}`
		recipe, err := parseRecipeContent(content, "petit-déjeuner")
		require.NoError(t, err)
		assert.Equal(t, "petit-déjeuner", recipe.MealType)
	})
}
