package review

import (
	"context"
)

// Repository 评论仓储接口
// 读操作使用 reviews INNER JOIN books,找不到所属图书的评论不可见
type Repository interface {
	// List 查询全部评论,每条带所属图书快照
	List(ctx context.Context) ([]Review, error)

	// FindByID 根据ID查找评论
	FindByID(ctx context.Context, id int64) (Review, bool, error)

	// ListByBookID 查询某本图书的全部评论
	ListByBookID(ctx context.Context, bookID int64) ([]Review, error)

	// Create 创建评论,成功后写回r.ID
	Create(ctx context.Context, r *Review) error

	// Update 按ID覆盖book_id/reviewer/rating/text
	Update(ctx context.Context, r *Review) error

	// Delete 按ID删除,ID不存在时静默成功
	Delete(ctx context.Context, id int64) error
}
