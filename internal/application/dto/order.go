package dto

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// OrderDTO 订单
// Books在输出时总是数组(没有图书时是[]而不是null)
type OrderDTO struct {
	ID       int64     `json:"id" example:"1"`
	Customer string    `json:"customer" example:"alice"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status" example:"NEW"`
	Books    []BookDTO `json:"books"`
}

// NewOrderDTO 实体 → DTO
// 只复制订单自己的字段,图书列表用调用方转换好的books
func NewOrderDTO(o order.Order, books []BookDTO) OrderDTO {
	if books == nil {
		books = []BookDTO{}
	}
	return OrderDTO{
		ID:       o.ID,
		Customer: o.Customer,
		Date:     o.Date,
		Status:   o.Status,
		Books:    books,
	}
}

// ToEntity DTO → 实体
// 不带图书:订单和图书的关联只通过AddBook/RemoveBook维护
func (d OrderDTO) ToEntity() order.Order {
	return order.Order{
		ID:       d.ID,
		Customer: d.Customer,
		Date:     d.Date,
		Status:   d.Status,
		Books:    []book.Book{},
	}
}
