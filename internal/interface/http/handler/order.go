package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/application/dto"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	orders apporder.Service
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(orders apporder.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List 订单列表
// @Summary      订单列表
// @Description  每个订单带完整图书列表,没有图书的订单也会返回
// @Tags         订单
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.OrderDTO}
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	list, err := h.orders.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderDTO}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	o, found, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		response.NotFound(c, apperrors.ErrOrderNotFound)
		return
	}
	response.Success(c, o)
}

// Create 创建订单
// @Summary      创建订单
// @Description  请求体中的books会被忽略,图书通过 POST /orders/{id}/books/{bookId} 关联
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.OrderDTO true "订单信息"
// @Success      201 {object} response.Response{data=dto.OrderDTO}
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderDTO
	if !bindJSON(c, &req) {
		return
	}

	if err := h.orders.Create(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, req)
}

// Update 更新订单
// @Summary      更新订单
// @Description  只覆盖customer/date/status,不修改关联图书
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.OrderDTO true "订单信息"
// @Success      200 {object} response.Response
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.OrderDTO
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	if err := h.orders.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Delete 删除订单
// @Summary      删除订单
// @Description  订单仍关联图书时返回500
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// AddBook 订单关联图书
// @Summary      订单关联图书
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        bookId path int true "图书ID"
// @Success      201 {object} response.Response
// @Failure      409 {object} response.Response "已关联"
// @Failure      500 {object} response.Response "订单或图书不存在"
// @Router       /api/v1/orders/{id}/books/{bookId} [post]
func (h *OrderHandler) AddBook(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	if err := h.orders.AddBook(c.Request.Context(), orderID, bookID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, nil)
}

// RemoveBook 订单取消关联图书
// @Summary      订单取消关联图书
// @Description  关联不存在时不报错
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/orders/{id}/books/{bookId} [delete]
func (h *OrderHandler) RemoveBook(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}

	if err := h.orders.RemoveBook(c.Request.Context(), orderID, bookID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
