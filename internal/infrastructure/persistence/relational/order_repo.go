package relational

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

const resourceOrder = "order"

// orderRepository 订单仓储实现
// 教学要点:
// 1. 读:一条LEFT JOIN查询取出订单和图书,在内存里按order_id折叠
// 2. 写:orders表和order_books表分开写,互不影响
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// List 查询全部订单
func (r *orderRepository) List(ctx context.Context) (orders []order.Order, err error) {
	defer observe(resourceOrder, "list", time.Now(), &err)

	rows, err := r.query(ctx, orderSelect())
	if err != nil {
		return nil, wrapDBError(err, "查询订单列表失败")
	}
	return assembleOrders(rows), nil
}

// FindByID 根据ID查找订单
// 订单有几本书就有几行,全部折叠进同一个Order
func (r *orderRepository) FindByID(ctx context.Context, id int64) (o order.Order, ok bool, err error) {
	defer observe(resourceOrder, "get", time.Now(), &err)

	rows, err := r.query(ctx, orderSelect().Where(sq.Eq{"o.id": id}))
	if err != nil {
		return order.Order{}, false, wrapDBError(err, "查询订单失败")
	}

	orders := assembleOrders(rows)
	if len(orders) == 0 {
		return order.Order{}, false, nil
	}
	return orders[0], true, nil
}

// ListByBookID 查询包含指定图书的订单
// 用子查询筛订单ID,保证返回的订单仍带完整的图书列表
func (r *orderRepository) ListByBookID(ctx context.Context, bookID int64) (orders []order.Order, err error) {
	defer observe(resourceOrder, "list_by_book", time.Now(), &err)

	q := orderSelect().Where("o.id IN (SELECT order_id FROM order_books WHERE book_id = ?)", bookID)
	rows, err := r.query(ctx, q)
	if err != nil {
		return nil, wrapDBError(err, "查询图书关联订单失败")
	}
	return assembleOrders(rows), nil
}

// Create 创建订单
// o.Books被忽略,图书通过AddBook关联
func (r *orderRepository) Create(ctx context.Context, o *order.Order) (err error) {
	defer observe(resourceOrder, "create", time.Now(), &err)

	if o.Date.IsZero() {
		o.Date = time.Now()
	}

	model := toOrderModel(o)
	model.ID = 0

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return wrapDBError(result.Error, "创建订单失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrCreateNoEffect
	}
	if model.ID == 0 {
		return order.ErrNoGeneratedID
	}

	o.ID = model.ID
	return nil
}

// Update 覆盖customer/date/status
func (r *orderRepository) Update(ctx context.Context, o *order.Order) (err error) {
	defer observe(resourceOrder, "update", time.Now(), &err)

	err = r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"customer": o.Customer,
			"date":     o.Date,
			"status":   o.Status,
		}).Error
	if err != nil {
		return wrapDBError(err, "更新订单失败")
	}
	return nil
}

// Delete 删除订单行
func (r *orderRepository) Delete(ctx context.Context, id int64) (err error) {
	defer observe(resourceOrder, "delete", time.Now(), &err)

	if err = r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderModel{}).Error; err != nil {
		return wrapDBError(err, "删除订单失败")
	}
	return nil
}

// AddBook 关联图书
// 不预先检查订单和图书是否存在,由外键约束兜底
func (r *orderRepository) AddBook(ctx context.Context, orderID, bookID int64) (err error) {
	defer observe(resourceOrder, "add_book", time.Now(), &err)

	link := OrderBookModel{OrderID: orderID, BookID: bookID}
	if err = r.db.WithContext(ctx).Omit(clause.Associations).Create(&link).Error; err != nil {
		return wrapDBError(err, "订单关联图书失败")
	}
	return nil
}

// RemoveBook 取消关联,关联不存在时静默成功
func (r *orderRepository) RemoveBook(ctx context.Context, orderID, bookID int64) (err error) {
	defer observe(resourceOrder, "remove_book", time.Now(), &err)

	err = r.db.WithContext(ctx).
		Where("order_id = ? AND book_id = ?", orderID, bookID).
		Delete(&OrderBookModel{}).Error
	if err != nil {
		return wrapDBError(err, "订单取消关联图书失败")
	}
	return nil
}

// query 执行squirrel拼好的查询
func (r *orderRepository) query(ctx context.Context, q sq.SelectBuilder) ([]orderRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
