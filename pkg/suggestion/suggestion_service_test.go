package suggestion

import (
	"context"
	"errors"
	"sync"
	"testing"

	"family-hub-backend/domain"
	"family-hub-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeGemini struct {
	text string
	err  error
}

func (f *fakeGemini) GenerateContent(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type searchCall struct {
	query string
	opts  SearchOptions
}

type fakeSpoonacular struct {
	mu      sync.Mutex
	results map[string][]RecipeResult
	errs    map[string]error
	calls   []searchCall
	err     error
}

func (f *fakeSpoonacular) SearchRecipes(_ context.Context, query string, opts SearchOptions) ([]RecipeResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, searchCall{query: query, opts: opts})
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

func (f *fakeSpoonacular) GetRecipeInformation(_ context.Context, recipeID int) (*RecipeInformation, error) {
	return &RecipeInformation{ID: recipeID, Title: "Detail"}, nil
}

func (f *fakeSpoonacular) GenerateMealPlan(_ context.Context, _, _ int, _, _ string) (*GeneratedPlan, error) {
	return &GeneratedPlan{}, nil
}

type stubPantry struct{ items []*entities.PantryItem }

func (s *stubPantry) GetPantryItems(_ context.Context, _ string) ([]*entities.PantryItem, error) {
	return s.items, nil
}

type stubPreferences struct{}

func (s *stubPreferences) GetPreference(_ context.Context, _, _ string) (*entities.Preference, error) {
	return nil, mongo.ErrNoDocuments
}

func newTestService(gemini GeminiClient, spoonacular SpoonacularClient) SuggestionService {
	return NewSuggestionService(gemini, spoonacular, &stubPantry{}, &stubPreferences{})
}

func TestExtractMealNames(t *testing.T) {
	names := ExtractMealNames("1. Grilled Chicken\n2. Veggie Stir Fry\n3. Pasta")
	assert.Equal(t, []string{"Grilled Chicken", "Veggie Stir Fry", "Pasta"}, names)
}

func TestExtractMealNamesWithChatter(t *testing.T) {
	text := "Sure! Here are some ideas:\n\n 1. Omelette \n2. Fried Rice\nEnjoy!"
	assert.Equal(t, []string{"Omelette", "Fried Rice"}, ExtractMealNames(text))
}

func TestExtractMealNamesNoList(t *testing.T) {
	assert.Empty(t, ExtractMealNames("I cannot help with that."))
}

func TestFlattenRecipe(t *testing.T) {
	r := RecipeResult{
		ID:              42,
		Title:           "Pasta",
		Image:           "img.jpg",
		ReadyInMinutes:  25,
		Servings:        4,
		PricePerServing: 250,
	}
	r.Nutrition.Nutrients = []Nutrient{
		{Name: "Fat", Amount: 10},
		{Name: "Calories", Amount: 512.4},
	}

	flat := FlattenRecipe(r)
	assert.Equal(t, 42, flat.ID)
	assert.Equal(t, 512, flat.Calories)
	assert.InDelta(t, 2.5, flat.PricePerServing, 1e-9)
}

func TestFlattenRecipeMissingCalories(t *testing.T) {
	r := RecipeResult{ID: 1, Title: "Mystery", PricePerServing: 100}
	flat := FlattenRecipe(r)
	assert.Equal(t, 0, flat.Calories)
}

func TestSuggestMeals(t *testing.T) {
	gemini := &fakeGemini{text: "1. Grilled Chicken\n2. Pasta"}
	spoon := &fakeSpoonacular{results: map[string][]RecipeResult{
		"Grilled Chicken": {{ID: 1, Title: "Grilled Chicken Thighs"}},
		"Pasta":           {{ID: 2, Title: "Pasta Primavera"}, {ID: 3, Title: "Pasta Bake"}},
	}}
	svc := newTestService(gemini, spoon)

	res, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "something quick"}, "fam1")
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 3)
}

func TestSuggestMealsParseFailure(t *testing.T) {
	svc := newTestService(&fakeGemini{text: "no list here"}, &fakeSpoonacular{})

	_, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "x"}, "fam1")
	assert.ErrorIs(t, err, domain.ErrSuggestionParse)
}

func TestSuggestMealsAPIFailure(t *testing.T) {
	svc := newTestService(&fakeGemini{err: errors.New("boom")}, &fakeSpoonacular{})

	_, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "x"}, "fam1")
	assert.ErrorIs(t, err, domain.ErrSuggestionAPIFailed)
}

func TestSuggestMealsFallbackUsesFirstToken(t *testing.T) {
	gemini := &fakeGemini{text: "1. Dragonfruit Surprise Bowl"}
	spoon := &fakeSpoonacular{results: map[string][]RecipeResult{
		// nothing for the full name, two hits for the first token
		"Dragonfruit": {{ID: 7, Title: "Dragonfruit Smoothie"}, {ID: 8, Title: "Dragonfruit Salad"}},
	}}
	svc := newTestService(gemini, spoon)

	res, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "x"}, "fam1")
	require.NoError(t, err)

	require.Len(t, spoon.calls, 2)
	assert.Equal(t, "Dragonfruit Surprise Bowl", spoon.calls[0].query)
	assert.Equal(t, 3, spoon.calls[0].opts.Number)
	assert.Equal(t, "Dragonfruit", spoon.calls[1].query)
	assert.Equal(t, 1, spoon.calls[1].opts.Number)

	// at most one result survives the fallback
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, 7, res.Recipes[0].ID)
}

func TestSuggestMealsAllLookupsFailed(t *testing.T) {
	gemini := &fakeGemini{text: "1. Grilled Chicken\n2. Pasta"}
	spoon := &fakeSpoonacular{err: errors.New("upstream down")}
	svc := newTestService(gemini, spoon)

	_, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "x"}, "fam1")
	assert.ErrorIs(t, err, domain.ErrSuggestionAPIFailed)
}

func TestSuggestMealsPartialLookupFailure(t *testing.T) {
	gemini := &fakeGemini{text: "1. Grilled Chicken\n2. Pasta"}
	spoon := &fakeSpoonacular{
		results: map[string][]RecipeResult{
			"Pasta": {{ID: 2, Title: "Pasta Primavera"}},
		},
		errs: map[string]error{
			"Grilled Chicken": errors.New("upstream down"),
			"Grilled":         errors.New("upstream down"),
		},
	}
	svc := newTestService(gemini, spoon)

	res, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "x"}, "fam1")
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, 2, res.Recipes[0].ID)
}

func TestSuggestMealsNoRecipesAfterFallback(t *testing.T) {
	gemini := &fakeGemini{text: "1. Nothingburger"}
	svc := newTestService(gemini, &fakeSpoonacular{})

	_, err := svc.SuggestMeals(context.Background(), domain.SuggestMealsRequest{Prompt: "x"}, "fam1")
	assert.ErrorIs(t, err, domain.ErrNoRecipesFound)
}

func TestReplaceSuggestion(t *testing.T) {
	gemini := &fakeGemini{text: " Shakshuka \n"}
	spoon := &fakeSpoonacular{results: map[string][]RecipeResult{
		"Shakshuka": {{ID: 11, Title: "Classic Shakshuka"}, {ID: 12, Title: "Green Shakshuka"}},
	}}
	svc := newTestService(gemini, spoon)

	res, err := svc.ReplaceSuggestion(context.Background(), domain.ReplaceSuggestionRequest{
		ExcludeTitles: []string{"Pasta", "Stir Fry"},
	}, "fam1")
	require.NoError(t, err)
	assert.Equal(t, 11, res.ID)
}
