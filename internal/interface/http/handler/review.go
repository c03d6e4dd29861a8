package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/application/dto"
	appreview "github.com/xiebiao/bookshop/internal/application/review"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	reviews appreview.Service
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(reviews appreview.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List 评论列表
// @Summary      评论列表
// @Tags         评论
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.ReviewDTO}
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.reviews.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get 评论详情
// @Summary      评论详情
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response{data=dto.ReviewDTO}
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	r, found, err := h.reviews.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		response.NotFound(c, apperrors.ErrReviewNotFound)
		return
	}
	response.Success(c, r)
}

// Create 创建评论
// @Summary      创建评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        request body dto.ReviewDTO true "评论信息"
// @Success      201 {object} response.Response{data=dto.ReviewDTO}
// @Failure      500 {object} response.Response "图书不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewDTO
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reviews.Create(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, req)
}

// Update 更新评论
// @Summary      更新评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        id path int true "评论ID"
// @Param        request body dto.ReviewDTO true "评论信息"
// @Success      200 {object} response.Response
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewDTO
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	if err := h.reviews.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Delete 删除评论
// @Summary      删除评论
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
