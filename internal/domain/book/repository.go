package book

import (
	"context"
)

// Repository 图书仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 查不到不是错误: FindByID返回ok=false,List返回空切片
// 3. 每次调用是独立的一次数据库操作,不跨调用开事务
type Repository interface {
	// List 查询全部图书
	List(ctx context.Context) ([]Book, error)

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id int64) (Book, bool, error)

	// Create 创建图书,成功后把数据库分配的ID写回b.ID
	// 没有插入任何行返回ErrCreateNoEffect,拿不到ID返回ErrNoGeneratedID
	Create(ctx context.Context, b *Book) error

	// Update 按ID整体覆盖title/author/genre/price,ID不存在时静默成功
	Update(ctx context.Context, b *Book) error

	// Delete 按ID删除,ID不存在时静默成功
	// 仍被订单或评论引用时返回数据库错误
	Delete(ctx context.Context, id int64) error
}
