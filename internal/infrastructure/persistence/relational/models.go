package relational

import (
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/review"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,domain/book.Book不依赖GORM
// 2. 价格列显式声明为double precision,三种数据库都能原样读回
type BookModel struct {
	ID     int64   `gorm:"primaryKey;autoIncrement"`
	Title  string  `gorm:"size:255;not null"`
	Author string  `gorm:"size:255;not null"`
	Genre  string  `gorm:"size:255;not null"`
	Price  float64 `gorm:"type:double precision;not null"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM订单模型
// 图书关联放在order_books表,这里不声明has-many,避免GORM在写订单时顺带写关联
type OrderModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Customer string    `gorm:"size:255;not null"`
	Date     time.Time `gorm:"not null"`
	Status   string    `gorm:"size:64;not null"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderBookModel 订单-图书关联
// 教学要点:
// 1. (order_id, book_id)联合主键,同一本书在一个订单里只能出现一次
// 2. 两个belongs-to字段只用来生成外键约束,写入时Omit掉
// 3. 外键不带ON DELETE CASCADE:删除仍有关联的订单或图书会被数据库拒绝
type OrderBookModel struct {
	OrderID int64      `gorm:"primaryKey;autoIncrement:false"`
	BookID  int64      `gorm:"primaryKey;autoIncrement:false;index"`
	Order   OrderModel `gorm:"foreignKey:OrderID"`
	Book    BookModel  `gorm:"foreignKey:BookID"`
}

// TableName 指定表名
func (OrderBookModel) TableName() string {
	return "order_books"
}

// ReviewModel GORM评论模型
type ReviewModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	BookID   int64     `gorm:"not null;index"`
	Book     BookModel `gorm:"foreignKey:BookID"`
	Reviewer string    `gorm:"size:255;not null"`
	Rating   int       `gorm:"not null"`
	Text     string    `gorm:"type:text;not null"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// =========================================
// 模型转换
// =========================================

func toBookModel(b *book.Book) BookModel {
	return BookModel{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
		Price:  b.Price,
	}
}

func toBookEntity(m BookModel) book.Book {
	return book.Book{
		ID:     m.ID,
		Title:  m.Title,
		Author: m.Author,
		Genre:  m.Genre,
		Price:  m.Price,
	}
}

func toOrderModel(o *order.Order) OrderModel {
	return OrderModel{
		ID:       o.ID,
		Customer: o.Customer,
		Date:     o.Date,
		Status:   o.Status,
	}
}

func toReviewModel(r *review.Review) ReviewModel {
	return ReviewModel{
		ID:       r.ID,
		BookID:   r.OwningBookID(),
		Reviewer: r.Reviewer,
		Rating:   r.Rating,
		Text:     r.Text,
	}
}
