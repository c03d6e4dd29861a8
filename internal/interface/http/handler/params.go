// Package handler HTTP处理器
//
// 设计说明:
// 1. handler只做参数解析和响应封装,业务全部交给application层的Service
// 2. Service用comma-ok表示"不存在",这里转成404
// 3. 路径ID解析失败、请求体绑定失败都返回40900(HTTP 400)
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// pathID 解析正整数路径参数,失败时已写好400响应
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的"+name+": "+c.Param(name))
		return 0, false
	}
	return id, true
}

// bindJSON 绑定请求体,失败时已写好400响应
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return false
	}
	return true
}
