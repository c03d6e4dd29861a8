package dto

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/review"
)

// ReviewDTO 评论
// 写入时只需要book_id;读取时额外带上所属图书
type ReviewDTO struct {
	ID       int64    `json:"id" example:"1"`
	BookID   int64    `json:"book_id" example:"1"`
	Book     *BookDTO `json:"book,omitempty"`
	Reviewer string   `json:"reviewer" example:"bob"`
	Rating   int      `json:"rating" example:"5"`
	Text     string   `json:"text" example:"好书"`
}

// NewReviewDTO 实体 → DTO,所属图书由调用方转换好传入
func NewReviewDTO(r review.Review, b *BookDTO) ReviewDTO {
	return ReviewDTO{
		ID:       r.ID,
		BookID:   r.OwningBookID(),
		Book:     b,
		Reviewer: r.Reviewer,
		Rating:   r.Rating,
		Text:     r.Text,
	}
}

// ToEntity DTO → 实体
// 嵌套图书只取ID,book_id为空时用book.id
func (d ReviewDTO) ToEntity() review.Review {
	bookID := d.BookID
	if bookID == 0 && d.Book != nil {
		bookID = d.Book.ID
	}
	return review.Review{
		ID:       d.ID,
		BookID:   bookID,
		Book:     book.Book{ID: bookID},
		Reviewer: d.Reviewer,
		Rating:   d.Rating,
		Text:     d.Text,
	}
}
