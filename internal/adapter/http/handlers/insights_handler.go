package handlers

import (
	"errors"
	"net/http"

	request "revolux/internal/adapter/http/dto/request"
	"revolux/internal/usecase"
	"revolux/pkg"

	"github.com/gin-gonic/gin"
)

// InsightsHandler answers free-text questions about the order book.
type InsightsHandler struct {
	usecase usecase.IInsightsUseCase
}

func NewInsightsHandler(uc usecase.IInsightsUseCase) *InsightsHandler {
	return &InsightsHandler{usecase: uc}
}

// Ask godoc
// @Summary      Ask the order assistant
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        body  body      request.AskRequest  true  "question"
// @Success      200   {object}  usecase.Answer
// @Failure      400   {object}  pkg.HTTPError
// @Router       /insights/ask [post]
func (h *InsightsHandler) Ask(c *gin.Context) {
	var payload request.AskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	answer, err := h.usecase.Ask(c.Request.Context(), payload.Question)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		if errors.Is(err, usecase.ErrEmptyQuestion) {
			appErr = errInvalidRequest
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, answer)
}
