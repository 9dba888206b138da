package handlers

import (
	"errors"
	"strconv"

	"family-hub-backend/domain"
	"family-hub-backend/internal/api/presenters"
	"family-hub-backend/pkg/suggestion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SuggestionHandler interface {
		SuggestMeals(c *fiber.Ctx) error
		ReplaceSuggestion(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		GetRecipeInformation(c *fiber.Ctx) error
	}

	suggestionHandler struct {
		suggestionService suggestion.SuggestionService
		validator         *validator.Validate
	}
)

func NewSuggestionHandler(suggestionService suggestion.SuggestionService, validator *validator.Validate) SuggestionHandler {
	return &suggestionHandler{
		suggestionService: suggestionService,
		validator:         validator,
	}
}

// suggestionError maps the gateway's sentinel errors to their user-facing
// messages.
func suggestionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSuggestionParse):
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedParseSuggestion, err)
	case errors.Is(err, domain.ErrNoRecipesFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedNoRecipesFound, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSuggestMeals, err)
	}
}

func (h *suggestionHandler) SuggestMeals(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.SuggestMealsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestMeals, err)
	}

	res, err := h.suggestionService.SuggestMeals(c.Context(), *req, familyID)
	if err != nil {
		return suggestionError(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestMeals)
}

func (h *suggestionHandler) ReplaceSuggestion(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := new(domain.ReplaceSuggestionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestMeals, err)
	}

	res, err := h.suggestionService.ReplaceSuggestion(c.Context(), *req, familyID)
	if err != nil {
		return suggestionError(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReplaceMeal)
}

func (h *suggestionHandler) SearchRecipes(c *fiber.Ctx) error {
	familyID := c.Locals("family_id").(string)
	req := domain.SearchRecipesRequest{Query: c.Query("query")}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	res, err := h.suggestionService.SearchRecipes(c.Context(), req, familyID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *suggestionHandler) GetRecipeInformation(c *fiber.Ctx) error {
	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeInfo, err)
	}

	res, err := h.suggestionService.GetRecipeInformation(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipeInfo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeInfo)
}
