package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/recipe-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/recipe-service/internal/app"
)

// RecipeHandler handles the /recipes endpoints.
type RecipeHandler struct {
	service *app.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(service *app.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// Create handles POST /recipes.
//
// @Summary Add a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	recipe, err := dto.ParseCreateRecipe(c)
	if err != nil {
		dto.HandleError(c, err, dto.CreateMessages)
		return
	}

	saved, err := h.service.Create(c.Request.Context(), recipe)
	if err != nil {
		dto.HandleError(c, err, dto.CreateMessages)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		Message: dto.MessageCreated,
		Recipe:  dto.ToRecipeResponse(saved),
	})
}

// List handles GET /recipes.
//
// @Summary List every recipe
// @Tags recipes
// @Produce json
// @Success 200 {array} dto.RecipeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err, dto.ListMessages)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeList(recipes))
}

// GetByTitle handles GET /recipes/:title.
//
// @Summary Get a recipe by title
// @Tags recipes
// @Produce json
// @Param title path string true "Exact recipe title"
// @Success 200 {object} dto.RecipeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/{title} [get]
func (h *RecipeHandler) GetByTitle(c *gin.Context) {
	recipe, err := h.service.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		dto.HandleError(c, err, dto.GetMessages)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// ListByAuthor handles GET /recipes/author/:authorName.
//
// @Summary List the recipes of an author
// @Tags recipes
// @Produce json
// @Param authorName path string true "Exact author name"
// @Success 200 {array} dto.RecipeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/author/{authorName} [get]
func (h *RecipeHandler) ListByAuthor(c *gin.Context) {
	recipes, err := h.service.ListByAuthor(c.Request.Context(), c.Param("authorName"))
	if err != nil {
		dto.HandleError(c, err, dto.ListMessages)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeList(recipes))
}

// ListEasy handles GET /recipes/difficulty/easy.
//
// @Summary List the recipes with difficulty "Easy"
// @Tags recipes
// @Produce json
// @Success 200 {array} dto.RecipeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/difficulty/easy [get]
func (h *RecipeHandler) ListEasy(c *gin.Context) {
	recipes, err := h.service.ListEasy(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err, dto.ListMessages)
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeList(recipes))
}

// UpdateByID handles POST /recipes/:recipeId.
//
// @Summary Update a recipe by id
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeId path string true "Recipe ObjectID"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/{recipeId} [post]
func (h *RecipeHandler) UpdateByID(c *gin.Context) {
	changes, err := dto.ParseRecipeChanges(c)
	if err != nil {
		dto.HandleError(c, err, dto.UpdateMessages)
		return
	}

	updated, err := h.service.UpdateByID(c.Request.Context(), c.Param("recipeId"), changes)
	if err != nil {
		dto.HandleError(c, err, dto.UpdateMessages)
		return
	}

	c.JSON(http.StatusOK, dto.UpdatedResponse{
		Message:       dto.MessageUpdated,
		UpdatedRecipe: dto.ToRecipeResponse(updated),
	})
}

// UpdateByTitle handles POST /recipes/title/:recipeTitle.
//
// @Summary Update the first recipe with a title
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeTitle path string true "Exact recipe title"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/title/{recipeTitle} [post]
func (h *RecipeHandler) UpdateByTitle(c *gin.Context) {
	changes, err := dto.ParseRecipeChanges(c)
	if err != nil {
		dto.HandleError(c, err, dto.UpdateMessages)
		return
	}

	updated, err := h.service.UpdateByTitle(c.Request.Context(), c.Param("recipeTitle"), changes)
	if err != nil {
		dto.HandleError(c, err, dto.UpdateMessages)
		return
	}

	c.JSON(http.StatusOK, dto.UpdatedResponse{
		Message:       dto.MessageUpdated,
		UpdatedRecipe: dto.ToRecipeResponse(updated),
	})
}

// DeleteByID handles DELETE /recipes/:recipeId.
//
// @Summary Delete a recipe by id
// @Tags recipes
// @Produce json
// @Param recipeId path string true "Recipe ObjectID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recipes/{recipeId} [delete]
func (h *RecipeHandler) DeleteByID(c *gin.Context) {
	deleted, err := h.service.DeleteByID(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		dto.HandleError(c, err, dto.DeleteMessages)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{
		Message:       dto.MessageDeleted,
		DeletedRecipe: dto.ToRecipeResponse(deleted),
	})
}

// RegisterRecipeRoutes registers the recipe routes on rg.
// gin resolves static segments before parameters, so /recipes/author/x
// and /recipes/difficulty/easy never reach GetByTitle.
func (h *RecipeHandler) RegisterRecipeRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	recipes.POST("", h.Create)
	recipes.GET("", h.List)
	recipes.GET("/:title", h.GetByTitle)
	recipes.GET("/author/:authorName", h.ListByAuthor)
	recipes.GET("/difficulty/easy", h.ListEasy)
	recipes.POST("/:recipeId", h.UpdateByID)
	recipes.POST("/title/:recipeTitle", h.UpdateByTitle)
	recipes.DELETE("/:recipeId", h.DeleteByID)
}
