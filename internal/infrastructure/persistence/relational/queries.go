package relational

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/review"
)

// 关联查询用squirrel拼SQL,再交给gorm.Raw执行
// squirrel默认使用?占位符,gorm会按方言改写(PostgreSQL → $1)

// orderSelect 订单及其图书
// LEFT JOIN保证没有图书的订单也有一行,图书列全为NULL
func orderSelect() sq.SelectBuilder {
	return sq.Select(
		"o.id AS order_id", "o.customer", "o.date", "o.status",
		"b.id AS book_id", "b.title", "b.author", "b.genre", "b.price",
	).
		From("orders o").
		LeftJoin("order_books ob ON o.id = ob.order_id").
		LeftJoin("books b ON ob.book_id = b.id").
		OrderBy("o.id", "b.id")
}

// reviewSelect 评论及其图书
// INNER JOIN:所属图书不存在的评论不会出现在结果里
func reviewSelect() sq.SelectBuilder {
	return sq.Select(
		"r.id", "r.book_id", "r.reviewer", "r.rating", "r.text",
		"b.title", "b.author", "b.genre", "b.price",
	).
		From("reviews r").
		Join("books b ON r.book_id = b.id").
		OrderBy("r.id")
}

// orderRow 订单关联查询的一行
type orderRow struct {
	OrderID  int64
	Customer string
	Date     time.Time
	Status   string
	BookID   sql.NullInt64
	Title    sql.NullString
	Author   sql.NullString
	Genre    sql.NullString
	Price    sql.NullFloat64
}

// hasBook book_id非NULL且非0才算一本图书
func (r orderRow) hasBook() bool {
	return r.BookID.Valid && r.BookID.Int64 != 0
}

// assembleOrders 把扁平的关联行折叠成订单列表
// 教学要点:
// 1. 按order_id聚合,同一订单的多行合并成一个Order,顺序保持首次出现的顺序
// 2. 没有图书的订单Books是空切片而不是nil
func assembleOrders(rows []orderRow) []order.Order {
	orders := make([]order.Order, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, seen := index[row.OrderID]
		if !seen {
			orders = append(orders, order.Order{
				ID:       row.OrderID,
				Customer: row.Customer,
				Date:     row.Date,
				Status:   row.Status,
				Books:    []book.Book{},
			})
			i = len(orders) - 1
			index[row.OrderID] = i
		}

		if row.hasBook() {
			orders[i].Books = append(orders[i].Books, book.Book{
				ID:     row.BookID.Int64,
				Title:  row.Title.String,
				Author: row.Author.String,
				Genre:  row.Genre.String,
				Price:  row.Price.Float64,
			})
		}
	}

	return orders
}

// reviewRow 评论关联查询的一行
type reviewRow struct {
	ID       int64
	BookID   int64
	Reviewer string
	Rating   int
	Text     string
	Title    string
	Author   string
	Genre    string
	Price    float64
}

func (r reviewRow) toEntity() review.Review {
	return review.Review{
		ID:     r.ID,
		BookID: r.BookID,
		Book: book.Book{
			ID:     r.BookID,
			Title:  r.Title,
			Author: r.Author,
			Genre:  r.Genre,
			Price:  r.Price,
		},
		Reviewer: r.Reviewer,
		Rating:   r.Rating,
		Text:     r.Text,
	}
}
