package relational

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// isDuplicateError 判断是否为唯一键/主键冲突
// 开启TranslateError后各方言会翻译成gorm.ErrDuplicatedKey,
// 没有翻译器的连接(如sqlmock)再按错误信息兜底:
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - PostgreSQL 23505: duplicate key value violates unique constraint
// - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// wrapDBError 数据库错误 → AppError
// 唯一键冲突单独给出ErrCodeDuplicateEntry,其它一律是数据库错误
// 已经是AppError的原样返回,不重复包装
func wrapDBError(err error, message string) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if isDuplicateError(err) {
		return apperrors.WrapCode(err, apperrors.ErrCodeDuplicateEntry, message)
	}
	return apperrors.Wrap(err, message)
}
