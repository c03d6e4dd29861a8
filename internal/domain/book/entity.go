package book

// Book 图书实体
// 设计说明:
// 1. 价格用float64存储,写入后原样读回(15.0读回仍是15.0)
// 2. 不持有Reviews/Orders反向集合,需要时按BookID查询
//    (review.Repository.ListByBookID、order.Repository.ListByBookID)
type Book struct {
	ID     int64
	Title  string
	Author string
	Genre  string
	Price  float64
}

// NewBook 创建新图书(ID由数据库分配)
func NewBook(title, author, genre string, price float64) *Book {
	return &Book{
		Title:  title,
		Author: author,
		Genre:  genre,
		Price:  price,
	}
}
