package order

import (
	"context"
)

// Repository 订单仓储接口
// 教学要点:
// 1. 读操作通过 orders LEFT JOIN order_books LEFT JOIN books 一次查出订单及其图书
// 2. 订单行与关联行分开维护: Create/Update只动orders表,AddBook/RemoveBook只动order_books表
// 3. 不提供事务,每个方法是一次独立的数据库操作
type Repository interface {
	// List 查询全部订单,每个订单带完整图书列表(没有图书时为空切片)
	List(ctx context.Context) ([]Order, error)

	// FindByID 根据ID查找订单
	FindByID(ctx context.Context, id int64) (Order, bool, error)

	// ListByBookID 查询包含指定图书的订单,每个订单仍带完整图书列表
	ListByBookID(ctx context.Context, bookID int64) ([]Order, error)

	// Create 创建订单(忽略o.Books),成功后写回o.ID
	// Date为零值时使用当前时间
	Create(ctx context.Context, o *Order) error

	// Update 按ID覆盖customer/date/status,不修改关联图书
	Update(ctx context.Context, o *Order) error

	// Delete 删除订单行,不级联删除order_books
	// 仍有关联图书时由数据库外键决定是否报错
	Delete(ctx context.Context, id int64) error

	// AddBook 插入一条(order_id, book_id)关联,重复关联返回数据库错误
	AddBook(ctx context.Context, orderID, bookID int64) error

	// RemoveBook 删除一条关联,不存在时静默成功
	RemoveBook(ctx context.Context, orderID, bookID int64) error
}
