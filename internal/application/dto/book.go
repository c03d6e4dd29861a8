// Package dto 应用层传输对象
//
// 设计说明:
// 1. DTO就是HTTP层的JSON结构,handler直接绑定和返回
// 2. 关联对象由调用方先转换好再传进来(NewOrderDTO的books、NewReviewDTO的book),
//    转换函数本身不查库、不递归
// 3. 图书DTO没有reviews/orders字段,Book→Review→Book的环在这一层断开
package dto

import (
	"github.com/samber/lo"

	"github.com/xiebiao/bookshop/internal/domain/book"
)

// BookDTO 图书
type BookDTO struct {
	ID     int64   `json:"id" example:"1"`
	Title  string  `json:"title" example:"三体"`
	Author string  `json:"author" example:"刘慈欣"`
	Genre  string  `json:"genre" example:"科幻"`
	Price  float64 `json:"price" example:"15.0"`
}

// NewBookDTO 实体 → DTO
func NewBookDTO(b book.Book) BookDTO {
	return BookDTO{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
		Price:  b.Price,
	}
}

// NewBookDTOs 批量转换,nil输入返回空切片
func NewBookDTOs(books []book.Book) []BookDTO {
	return lo.Map(books, func(b book.Book, _ int) BookDTO {
		return NewBookDTO(b)
	})
}

// ToEntity DTO → 实体
func (d BookDTO) ToEntity() book.Book {
	return book.Book{
		ID:     d.ID,
		Title:  d.Title,
		Author: d.Author,
		Genre:  d.Genre,
		Price:  d.Price,
	}
}
