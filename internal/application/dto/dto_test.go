package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/review"
)

func TestBookDTO_RoundTrip(t *testing.T) {
	in := BookDTO{ID: 1, Title: "Title", Author: "Author", Genre: "Genre", Price: 15.0}
	assert.Equal(t, in, NewBookDTO(in.ToEntity()))
}

func TestNewBookDTOs(t *testing.T) {
	assert.Equal(t, []BookDTO{}, NewBookDTOs(nil))

	got := NewBookDTOs([]book.Book{{ID: 1, Title: "A", Price: 15.0}})
	assert.Equal(t, []BookDTO{{ID: 1, Title: "A", Price: 15.0}}, got)
}

func TestOrderDTO(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	o := order.Order{ID: 3, Customer: "alice", Date: date, Status: "NEW", Books: []book.Book{{ID: 1}}}

	t.Run("没有图书时输出空数组", func(t *testing.T) {
		d := NewOrderDTO(o, nil)
		raw, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"books":[]`)
	})

	t.Run("转回实体时不带图书", func(t *testing.T) {
		d := NewOrderDTO(o, []BookDTO{{ID: 1}})
		e := d.ToEntity()
		assert.Equal(t, int64(3), e.ID)
		assert.Equal(t, date, e.Date)
		assert.NotNil(t, e.Books)
		assert.Empty(t, e.Books)
	})
}

func TestReviewDTO(t *testing.T) {
	t.Run("book_id优先", func(t *testing.T) {
		d := ReviewDTO{BookID: 2, Book: &BookDTO{ID: 5}}
		assert.Equal(t, int64(2), d.ToEntity().BookID)
	})

	t.Run("没有book_id时取嵌套图书", func(t *testing.T) {
		d := ReviewDTO{Book: &BookDTO{ID: 5}}
		e := d.ToEntity()
		assert.Equal(t, int64(5), e.OwningBookID())
	})

	t.Run("实体转DTO使用传入的图书", func(t *testing.T) {
		r := review.Review{ID: 1, Book: book.Book{ID: 7}, Reviewer: "bob", Rating: 5}
		b := NewBookDTO(r.Book)
		d := NewReviewDTO(r, &b)
		assert.Equal(t, int64(7), d.BookID)
		assert.Same(t, &b, d.Book)
	})

	t.Run("没有图书时不输出book字段", func(t *testing.T) {
		raw, err := json.Marshal(ReviewDTO{ID: 1, BookID: 2})
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"book"`)
	})
}
