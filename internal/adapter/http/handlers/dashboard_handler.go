package handlers

import (
	"net/http"
	"strconv"

	response "revolux/internal/adapter/http/dto/response"
	"revolux/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-side views of the analyst and strategy
// dashboards. Every response is derived from the current store snapshot.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// AnalystDashboard godoc
// @Summary      Orders analyst summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.AnalystSummaryResponse
// @Router       /dashboard/analyst [get]
func (h *DashboardHandler) AnalystDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, response.FromAnalystSummary(h.usecase.AnalystSummary(ctx), h.usecase.Now()))
}

// StrategyDashboard godoc
// @Summary      Strategy analyst summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.StrategySummaryResponse
// @Router       /dashboard/strategy [get]
func (h *DashboardHandler) StrategyDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, response.FromStrategySummary(h.usecase.StrategySummary(ctx), h.usecase.Now()))
}

// UrgentOrders godoc
// @Summary      Actionable orders due within the horizon
// @Tags         dashboard
// @Produce      json
// @Param        horizon_days  query    int  false  "days ahead (default 7)"
// @Success      200           {array}  response.OrderResponse
// @Failure      400           {object} pkg.HTTPError
// @Router       /orders/urgent [get]
func (h *DashboardHandler) UrgentOrders(c *gin.Context) {
	horizon := 0
	if raw := c.Query("horizon_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
		horizon = n
	}
	orders := h.usecase.UrgentOrders(c.Request.Context(), horizon)
	c.JSON(http.StatusOK, response.FromOrders(orders, h.usecase.Now()))
}

// CostCenterStats godoc
// @Summary      Order value grouped by cost center
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.TotalsResponse
// @Router       /stats/cost-centers [get]
func (h *DashboardHandler) CostCenterStats(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTotals(h.usecase.CostCenterTotals(c.Request.Context())))
}

// StatusStats godoc
// @Summary      Order value grouped by status
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.TotalsResponse
// @Router       /stats/statuses [get]
func (h *DashboardHandler) StatusStats(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTotals(h.usecase.StatusTotals(c.Request.Context())))
}

// SupplierStats godoc
// @Summary      Supplier ranking and ticket statistics
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.SupplierStatsResponse
// @Router       /stats/suppliers [get]
func (h *DashboardHandler) SupplierStats(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, response.FromSupplierStats(h.usecase.SupplierRanking(ctx), h.usecase.Tickets(ctx)))
}
