package review

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
)

// Review 图书评论实体
// BookID是外键,Book是读取时由 reviews JOIN books 重建的图书快照
type Review struct {
	ID       int64
	BookID   int64
	Book     book.Book
	Reviewer string
	Rating   int
	Text     string
}

// NewReview 创建新评论
func NewReview(bookID int64, reviewer string, rating int, text string) *Review {
	return &Review{
		BookID:   bookID,
		Book:     book.Book{ID: bookID},
		Reviewer: reviewer,
		Rating:   rating,
		Text:     text,
	}
}

// OwningBookID 评论所属图书ID
// 只设置了Book快照时回退到Book.ID
func (r *Review) OwningBookID() int64 {
	if r.BookID != 0 {
		return r.BookID
	}
	return r.Book.ID
}
