package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogNames(matches []CatalogRecipe) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return names
}

func TestMatchCatalogEmptyFridge(t *testing.T) {
	assert.Empty(t, MatchCatalog(nil))
	assert.Empty(t, MatchCatalog([]string{}))
}

func TestMatchCatalogExactIngredients(t *testing.T) {
	matches := MatchCatalog([]string{"tomate", "huile d'olive", "sel"})

	names := catalogNames(matches)
	assert.Contains(t, names, "Salade de tomates")
	assert.NotContains(t, names, "Omelette", "missing oeuf, poivre and lait")
}

func TestMatchCatalogSubstring(t *testing.T) {
	// "tomate cerise" satisfies the requirement "tomate".
	matches := MatchCatalog([]string{"tomate cerise", "huile d'olive extra vierge", "sel fin"})

	assert.Contains(t, catalogNames(matches), "Salade de tomates")
}

func TestMatchCatalogPreservesOrder(t *testing.T) {
	// A fridge covering both tomato salad and buttered pasta must return
	// them in catalog order.
	matches := MatchCatalog([]string{"tomate", "huile d'olive", "sel", "pâtes", "beurre"})

	names := catalogNames(matches)
	require.Contains(t, names, "Salade de tomates")
	require.Contains(t, names, "Pâtes au beurre")

	saladIdx, pastaIdx := -1, -1
	for i, name := range names {
		switch name {
		case "Salade de tomates":
			saladIdx = i
		case "Pâtes au beurre":
			pastaIdx = i
		}
	}
	assert.Less(t, saladIdx, pastaIdx)
}

func TestMatchCatalogPartialIngredients(t *testing.T) {
	// Two out of three required ingredients is not a match.
	matches := MatchCatalog([]string{"tomate", "sel"})

	assert.NotContains(t, catalogNames(matches), "Salade de tomates")
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	for _, r := range Catalog {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Ingredients, "recipe %q has no ingredients", r.Name)
		assert.NotEmpty(t, r.Steps, "recipe %q has no steps", r.Name)
	}
}
