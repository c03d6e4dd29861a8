package review

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrReviewNotFound 评论不存在(仓储层用comma-ok表示不存在,HTTP层才转成这个错误)
	ErrReviewNotFound = apperrors.ErrReviewNotFound

	// ErrCreateNoEffect 插入语句没有影响任何行
	ErrCreateNoEffect = apperrors.New(apperrors.ErrCodeCreateNoEffect, "创建评论失败,没有插入任何记录")

	// ErrNoGeneratedID 插入成功但没有拿到自增ID
	ErrNoGeneratedID = apperrors.New(apperrors.ErrCodeNoGeneratedID, "创建评论失败,未获取到ID")
)
