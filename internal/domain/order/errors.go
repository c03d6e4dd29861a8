package order

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrCreateNoEffect 插入语句没有影响任何行
	ErrCreateNoEffect = apperrors.New(apperrors.ErrCodeCreateNoEffect, "创建订单失败,没有插入任何记录")

	// ErrNoGeneratedID 插入成功但没有拿到自增ID
	ErrNoGeneratedID = apperrors.New(apperrors.ErrCodeNoGeneratedID, "创建订单失败,未获取到ID")
)
