package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/services"
	"github.com/fergood-2703/SIA-FCP/internal/middleware"
)

// AssistantController proxies free-text questions to the campus assistant
type AssistantController struct {
	assistantService services.AssistantService
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(assistantService services.AssistantService) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Ask forwards a question to the assistant webhook and returns its answer
func (c *AssistantController) Ask(ctx *gin.Context) {
	var req dto.AskRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	answer, err := c.assistantService.Ask(ctx, req.Question)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(answer))
}
