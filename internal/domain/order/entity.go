package order

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// Order 订单实体
// 教学要点:
// 1. Books是下单图书的值快照,每次读取时由关联查询重新组装
// 2. 同一本书在一个订单里最多出现一次(order_books联合主键保证)
// 3. Status是自由文本,不做状态机校验
type Order struct {
	ID       int64
	Customer string
	Date     time.Time
	Status   string
	Books    []book.Book
}

// NewOrder 创建新订单(不带图书,图书通过AddBook关联)
func NewOrder(customer string, date time.Time, status string) *Order {
	return &Order{
		Customer: customer,
		Date:     date,
		Status:   status,
		Books:    []book.Book{},
	}
}

// BookIDs 订单中所有图书的ID
func (o *Order) BookIDs() []int64 {
	ids := make([]int64, 0, len(o.Books))
	for _, b := range o.Books {
		ids = append(ids, b.ID)
	}
	return ids
}

// HasBook 订单是否包含指定图书
func (o *Order) HasBook(bookID int64) bool {
	for _, b := range o.Books {
		if b.ID == bookID {
			return true
		}
	}
	return false
}
