package suggestion

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/internal/utils/logging"
)

type (
	// PantrySource and PreferenceSource are the read-only views the gateway
	// needs from the pantry and preference repositories.
	PantrySource interface {
		GetPantryItems(ctx context.Context, familyID string) ([]*entities.PantryItem, error)
	}

	PreferenceSource interface {
		GetPreference(ctx context.Context, familyID, name string) (*entities.Preference, error)
	}

	SuggestionService interface {
		SuggestMeals(ctx context.Context, req domain.SuggestMealsRequest, familyID string) (domain.SuggestMealsResponse, error)
		ReplaceSuggestion(ctx context.Context, req domain.ReplaceSuggestionRequest, familyID string) (domain.SuggestedRecipe, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest, familyID string) ([]domain.SuggestedRecipe, error)
		GetRecipeInformation(ctx context.Context, recipeID int) (domain.RecipeInformationResponse, error)
	}

	suggestionService struct {
		gemini      GeminiClient
		spoonacular SpoonacularClient
		pantry      PantrySource
		preferences PreferenceSource
	}
)

func NewSuggestionService(gemini GeminiClient, spoonacular SpoonacularClient, pantry PantrySource, preferences PreferenceSource) SuggestionService {
	return &suggestionService{
		gemini:      gemini,
		spoonacular: spoonacular,
		pantry:      pantry,
		preferences: preferences,
	}
}

var mealNamePattern = regexp.MustCompile(`(?m)^\s*(\d+)\.\s*(.+)$`)

// ExtractMealNames pulls meal names out of a numbered-list response, one name
// per "<digits>. <name>" line.
func ExtractMealNames(text string) []string {
	matches := mealNamePattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[2])
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FlattenRecipe reduces a raw search result to the shape the UI renders.
// Price arrives in integer cents; a missing "Calories" nutrient means zero.
func FlattenRecipe(r RecipeResult) domain.SuggestedRecipe {
	calories := 0
	for _, n := range r.Nutrition.Nutrients {
		if n.Name == "Calories" {
			calories = int(math.Round(n.Amount))
			break
		}
	}

	return domain.SuggestedRecipe{
		ID:              r.ID,
		Title:           r.Title,
		ImageURL:        r.Image,
		ReadyInMinutes:  r.ReadyInMinutes,
		Servings:        r.Servings,
		PricePerServing: r.PricePerServing / 100,
		Calories:        calories,
	}
}

func (s *suggestionService) SuggestMeals(ctx context.Context, req domain.SuggestMealsRequest, familyID string) (domain.SuggestMealsResponse, error) {
	pantryNames, err := s.pantryNames(ctx, familyID)
	if err != nil {
		return domain.SuggestMealsResponse{}, err
	}

	prompt := fmt.Sprintf(
		"As a sous chef, given these pantry items: %s, and this user request: %q, "+
			"suggest 3 simple meal ideas that use ingredients from the pantry. "+
			"Format your response as a numbered list of just the meal names, "+
			"keeping each name short and general.",
		strings.Join(pantryNames, ", "), req.Prompt,
	)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return domain.SuggestMealsResponse{}, domain.ErrSuggestionAPIFailed
	}

	mealNames := ExtractMealNames(text)
	if len(mealNames) == 0 {
		return domain.SuggestMealsResponse{}, domain.ErrSuggestionParse
	}

	recipes, err := s.lookupRecipes(ctx, mealNames, familyID)
	if err != nil {
		return domain.SuggestMealsResponse{}, err
	}
	if len(recipes) == 0 {
		return domain.SuggestMealsResponse{}, domain.ErrNoRecipesFound
	}

	return domain.SuggestMealsResponse{Recipes: recipes}, nil
}

// lookupRecipes resolves each meal name against the recipe search endpoint.
// Lookups run concurrently; a failed lookup loses only that name's results,
// but every lookup failing surfaces as an API failure rather than an empty
// result set.
func (s *suggestionService) lookupRecipes(ctx context.Context, mealNames []string, familyID string) ([]domain.SuggestedRecipe, error) {
	diet := s.dietFilter(ctx, familyID)

	perName := make([][]domain.SuggestedRecipe, len(mealNames))
	failed := make([]bool, len(mealNames))
	var wg sync.WaitGroup
	for i, name := range mealNames {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			recipes, err := s.searchWithFallback(ctx, name, diet)
			if err != nil {
				logging.Logger.Warnf("recipe lookup failed for %q: %v", name, err)
				failed[i] = true
				return
			}
			perName[i] = recipes
		}(i, name)
	}
	wg.Wait()

	allFailed := true
	for _, f := range failed {
		if !f {
			allFailed = false
			break
		}
	}
	if allFailed {
		return nil, domain.ErrSuggestionAPIFailed
	}

	var recipes []domain.SuggestedRecipe
	for _, batch := range perName {
		recipes = append(recipes, batch...)
	}
	return recipes, nil
}

// searchWithFallback retries a zero-result search exactly once, using only the
// first word of the meal name and keeping at most one result.
func (s *suggestionService) searchWithFallback(ctx context.Context, name, diet string) ([]domain.SuggestedRecipe, error) {
	results, err := s.spoonacular.SearchRecipes(ctx, name, SearchOptions{
		Number:        3,
		Diet:          diet,
		WithNutrition: true,
	})
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		firstWord := strings.Fields(name)[0]
		results, err = s.spoonacular.SearchRecipes(ctx, firstWord, SearchOptions{
			Number:        1,
			Diet:          diet,
			WithNutrition: true,
		})
		if err != nil {
			return nil, err
		}
		if len(results) > 1 {
			results = results[:1]
		}
	}

	recipes := make([]domain.SuggestedRecipe, 0, len(results))
	for _, r := range results {
		recipes = append(recipes, FlattenRecipe(r))
	}
	return recipes, nil
}

func (s *suggestionService) ReplaceSuggestion(ctx context.Context, req domain.ReplaceSuggestionRequest, familyID string) (domain.SuggestedRecipe, error) {
	pantryNames, err := s.pantryNames(ctx, familyID)
	if err != nil {
		return domain.SuggestedRecipe{}, err
	}

	prompt := fmt.Sprintf(
		"As a sous chef, given these pantry items: %s, suggest 1 alternative meal "+
			"idea that uses ingredients from the pantry. It should be different "+
			"from: %s. Reply with just the meal name.",
		strings.Join(pantryNames, ", "), strings.Join(req.ExcludeTitles, ", "),
	)

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return domain.SuggestedRecipe{}, domain.ErrSuggestionAPIFailed
	}

	mealName := strings.TrimSpace(text)
	if names := ExtractMealNames(text); len(names) > 0 {
		mealName = names[0]
	}
	if mealName == "" {
		return domain.SuggestedRecipe{}, domain.ErrSuggestionParse
	}

	recipes, err := s.searchWithFallback(ctx, mealName, s.dietFilter(ctx, familyID))
	if err != nil {
		return domain.SuggestedRecipe{}, domain.ErrSuggestionAPIFailed
	}
	if len(recipes) == 0 {
		return domain.SuggestedRecipe{}, domain.ErrNoRecipesFound
	}

	return recipes[0], nil
}

func (s *suggestionService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest, familyID string) ([]domain.SuggestedRecipe, error) {
	pantryNames, err := s.pantryNames(ctx, familyID)
	if err != nil {
		return nil, err
	}

	results, err := s.spoonacular.SearchRecipes(ctx, req.Query, SearchOptions{
		Number:             10,
		Diet:               s.dietFilter(ctx, familyID),
		IncludeIngredients: strings.Join(pantryNames, ","),
		WithNutrition:      true,
	})
	if err != nil {
		return nil, domain.ErrSuggestionAPIFailed
	}

	recipes := make([]domain.SuggestedRecipe, 0, len(results))
	for _, r := range results {
		recipes = append(recipes, FlattenRecipe(r))
	}
	return recipes, nil
}

func (s *suggestionService) GetRecipeInformation(ctx context.Context, recipeID int) (domain.RecipeInformationResponse, error) {
	info, err := s.spoonacular.GetRecipeInformation(ctx, recipeID)
	if err != nil {
		return domain.RecipeInformationResponse{}, domain.ErrSuggestionAPIFailed
	}

	ingredients := make([]string, 0, len(info.ExtendedIngredients))
	for _, ing := range info.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	var instructions []string
	if len(info.AnalyzedInstructions) > 0 {
		for _, step := range info.AnalyzedInstructions[0].Steps {
			instructions = append(instructions, step.Step)
		}
	}

	calories := 0
	for _, n := range info.Nutrition.Nutrients {
		if n.Name == "Calories" {
			calories = int(math.Round(n.Amount))
			break
		}
	}

	return domain.RecipeInformationResponse{
		ID:           info.ID,
		Title:        info.Title,
		ImageURL:     info.Image,
		Servings:     info.Servings,
		Ingredients:  ingredients,
		Instructions: instructions,
		Calories:     calories,
	}, nil
}

func (s *suggestionService) pantryNames(ctx context.Context, familyID string) ([]string, error) {
	items, err := s.pantry.GetPantryItems(ctx, familyID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}

func (s *suggestionService) dietFilter(ctx context.Context, familyID string) string {
	pref, err := s.preferences.GetPreference(ctx, familyID, "dietary")
	if err != nil || pref == nil {
		return ""
	}
	return strings.Join(pref.Diets, ",")
}
