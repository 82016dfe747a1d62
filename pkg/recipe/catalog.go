package recipe

import (
	"fmt"
	"strings"
)

// CatalogRecipe is a static rule-based suggestion: it qualifies when every
// required ingredient is present among the user's fridge items.
type CatalogRecipe struct {
	Name        string
	Ingredients []string
	Steps       []string
}

// Catalog is the fixed suggestion catalog. Order matters: matches are
// returned in catalog order without further ranking.
var Catalog = []CatalogRecipe{
	{
		Name:        "Salade de tomates",
		Ingredients: []string{"tomate", "huile d'olive", "sel"},
		Steps:       []string{"Couper les tomates", "Assaisonner avec huile et sel", "Servir frais"},
	},
	{
		Name:        "Omelette",
		Ingredients: []string{"oeuf", "sel", "poivre", "lait"},
		Steps:       []string{"Battre les œufs", "Ajouter le lait et assaisonnement", "Cuire à la poêle"},
	},
	{
		Name:        "Pâtes au beurre",
		Ingredients: []string{"pâtes", "beurre", "sel"},
		Steps:       []string{"Cuire les pâtes", "Faire fondre le beurre", "Mélanger et servir"},
	},
	{
		Name:        "Toast avocat",
		Ingredients: []string{"pain", "avocat", "citron", "sel"},
		Steps:       []string{"Griller le pain", "Écraser l'avocat", "Ajouter citron et sel"},
	},
	{
		Name:        "Soupe de légumes",
		Ingredients: []string{"carotte", "pomme de terre", "oignon", "bouillon"},
		Steps:       []string{"Couper les légumes", "Faire revenir l'oignon", "Ajouter les légumes et le bouillon", "Cuire jusqu'à tendreté"},
	},
	{
		Name:        "Riz sauté",
		Ingredients: []string{"riz", "légumes variés", "sauce soja"},
		Steps:       []string{"Cuire le riz", "Faire sauter les légumes", "Mélanger avec le riz et la sauce soja"},
	},
	{
		Name:        "Smoothie banane",
		Ingredients: []string{"banane", "lait", "miel"},
		Steps:       []string{"Mixer tous les ingrédients jusqu'à consistance lisse"},
	},
	{
		Name:        "Tartine de fromage",
		Ingredients: []string{"pain", "fromage", "herbes"},
		Steps:       []string{"Tartiner le fromage sur le pain", "Ajouter des herbes au goût"},
	},
	{
		Name:        "Chili sin carne",
		Ingredients: []string{"haricots rouges", "tomate", "oignon", "épices"},
		Steps:       []string{"Faire revenir l'oignon", "Ajouter les haricots et la tomate", "Assaisonner avec les épices"},
	},
	{
		Name:        "Pancakes",
		Ingredients: []string{"farine", "lait", "oeuf", "sucre"},
		Steps:       []string{"Mélanger tous les ingrédients", "Cuire à la poêle jusqu'à doré"},
	},
	{
		Name:        "Wrap au poulet",
		Ingredients: []string{"tortilla", "poulet", "laitue", "sauce"},
		Steps:       []string{"Cuire le poulet", "Assembler dans la tortilla avec laitue et sauce"},
	},
	{
		Name:        "Quiche aux légumes",
		Ingredients: []string{"pâte brisée", "œufs", "légumes variés", "crème"},
		Steps:       []string{"Étaler la pâte dans un moule", "Battre les œufs avec la crème", "Ajouter les légumes", "Cuire au four jusqu'à doré"},
	},
}

// A broken catalog entry is a configuration error, not a runtime condition.
func init() {
	for i, r := range Catalog {
		if r.Name == "" || len(r.Ingredients) == 0 || len(r.Steps) == 0 {
			panic(fmt.Sprintf("recipe catalog: entry %d is malformed", i))
		}
	}
}

// MatchCatalog returns the catalog recipes whose required ingredients are
// all satisfied by the user's ingredient names. Matching is by substring: a
// user ingredient "tomate cerise" satisfies the requirement "tomate". The
// caller is expected to pass lower-cased names.
func MatchCatalog(userIngredients []string) []CatalogRecipe {
	matches := make([]CatalogRecipe, 0)
	for _, r := range Catalog {
		if catalogRecipeSatisfied(r, userIngredients) {
			matches = append(matches, r)
		}
	}
	return matches
}

func catalogRecipeSatisfied(r CatalogRecipe, userIngredients []string) bool {
	for _, required := range r.Ingredients {
		required = strings.ToLower(required)
		found := false
		for _, have := range userIngredients {
			if strings.Contains(have, required) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
