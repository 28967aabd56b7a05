package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	request "revolux/internal/adapter/http/dto/request"
	response "revolux/internal/adapter/http/dto/response"
	"revolux/internal/domain/dashboard"
	"revolux/internal/domain/entities"
	"revolux/internal/domain/workflow"
	"revolux/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	streamBuffer    = 32
	streamHeartbeat = 25 * time.Second
)

// OrderHandler handles HTTP requests for purchase orders and their workflow.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	now     func() time.Time
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// ListOrders godoc
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status       query  string  false  "status or all"
// @Param        cost_center  query  string  false  "cost center"
// @Param        source       query  string  false  "source"
// @Param        q            query  string  false  "free-text search"
// @Success      200  {array}  response.OrderResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter := dashboard.OrderFilter{
		Search:     c.Query("q"),
		Status:     entities.OrderStatus(c.Query("status")),
		CostCenter: c.Query("cost_center"),
		Source:     c.Query("source"),
	}
	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders, h.now()))
}

// CreateOrder godoc
// @Summary      Register a purchase order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateOrderRequest  true  "order"
// @Success      201   {object}  response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	o, err := h.usecase.Create(c.Request.Context(), actor, payload.ToDraft())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o, h.now()))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.now()))
}

// GetHistory godoc
// @Summary      Audit trail of an order
// @Tags         orders
// @Produce      json
// @Param        id   path     string  true  "order id"
// @Success      200  {array}  response.HistoryEntryResponse
// @Router       /orders/{id}/history [get]
func (h *OrderHandler) GetHistory(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(entries))
}

// GetAllowedActions godoc
// @Summary      Actions the caller may perform on an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "order id"
// @Success      200  {object}  response.AllowedActionsResponse
// @Router       /orders/{id}/actions [get]
func (h *OrderHandler) GetAllowedActions(c *gin.Context) {
	actor := actorFrom(c)
	id := c.Param("id")
	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	actions, err := h.usecase.AllowedActions(c.Request.Context(), id, actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AllowedActionsResponse{
		OrderID: o.ID,
		Status:  string(o.Status),
		Role:    actor.Role,
		Actions: actions,
	})
}

// PerformAction godoc
// @Summary      Apply a workflow action
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true   "order id"
// @Param        action  path      string                 true   "workflow action"
// @Param        body    body      request.ActionRequest  false  "action payload"
// @Success      200     {object}  response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      403     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /orders/{id}/actions/{action} [post]
func (h *OrderHandler) PerformAction(c *gin.Context) {
	id := c.Param("id")
	action, ok := workflow.ParseAction(c.Param("action"))
	if !ok {
		c.JSON(errUnknownAction.HTTPStatus, errUnknownAction.ToHTTPError())
		return
	}

	var payload request.ActionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			log.Printf("[order][handler] invalid action payload order_id=%s action=%s err=%v", id, action, err)
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	actor := actorFrom(c)
	o, err := h.usecase.PerformAction(c.Request.Context(), id, actor, action, payload.ToPayload())
	if err != nil {
		log.Printf("[order][handler] perform-action failed order_id=%s action=%s err=%v", id, action, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.now()))
}

// ListStatuses godoc
// @Summary      Status catalog with permitted actions per role
// @Tags         orders
// @Produce      json
// @Success      200  {array}  workflow.StatusDescriptor
// @Router       /statuses [get]
func (h *OrderHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Statuses())
}

// StreamOrders godoc
// @Summary      Server-sent events of order changes
// @Tags         orders
// @Produce      text/event-stream
// @Router       /orders/stream [get]
func (h *OrderHandler) StreamOrders(c *gin.Context) {
	events := make(chan usecase.OrderEvent, streamBuffer)
	unsubscribe := h.usecase.Subscribe(func(e usecase.OrderEvent) {
		select {
		case events <- e:
		default:
			log.Printf("[order][handler] stream buffer full, dropping event order_id=%s", e.Order.ID)
		}
	})
	defer unsubscribe()

	log.Printf("[order][handler] stream opened actor=%s", actorFrom(c).Email)
	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case e := <-events:
			c.SSEvent(string(e.Type), response.FromOrder(e.Order, h.now()))
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", h.now().Format(time.RFC3339))
			return true
		}
	})
	log.Printf("[order][handler] stream closed")
}
