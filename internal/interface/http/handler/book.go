package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	"github.com/xiebiao/bookshop/internal/application/dto"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appreview "github.com/xiebiao/bookshop/internal/application/review"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
// 图书的评论和订单通过反向查询接口获取,图书本身不带这两个集合
type BookHandler struct {
	books   appbook.Service
	reviews appreview.Service
	orders  apporder.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(books appbook.Service, reviews appreview.Service, orders apporder.Service) *BookHandler {
	return &BookHandler{books: books, reviews: reviews, orders: orders}
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookDTO}
// @Failure      500 {object} response.Response "数据库错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	list, err := h.books.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookDTO}
// @Failure      400 {object} response.Response "ID格式错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, found, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		response.NotFound(c, apperrors.ErrBookNotFound)
		return
	}
	response.Success(c, b)
}

// Create 创建图书
// @Summary      创建图书
// @Description  请求体中的id会被忽略,由数据库分配
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookDTO true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookDTO}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookDTO
	if !bindJSON(c, &req) {
		return
	}

	if err := h.books.Create(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, req)
}

// Update 更新图书
// @Summary      更新图书
// @Description  整体覆盖,ID以路径为准;ID不存在时不报错
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.BookDTO true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookDTO}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.BookDTO
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	if err := h.books.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, req)
}

// Delete 删除图书
// @Summary      删除图书
// @Description  仍被订单或评论引用时返回500
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      500 {object} response.Response "数据库错误"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListReviews 图书的评论
// @Summary      图书的评论
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=[]dto.ReviewDTO}
// @Router       /api/v1/books/{id}/reviews [get]
func (h *BookHandler) ListReviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.reviews.ListByBook(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListOrders 包含该图书的订单
// @Summary      包含该图书的订单
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=[]dto.OrderDTO}
// @Router       /api/v1/books/{id}/orders [get]
func (h *BookHandler) ListOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.orders.ListByBook(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
