package relational

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

const resourceBook = "book"

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库错误统一包装成AppError,查不到用comma-ok表达
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// List 查询全部图书
func (r *bookRepository) List(ctx context.Context) (books []book.Book, err error) {
	defer observe(resourceBook, "list", time.Now(), &err)

	var models []BookModel
	if err = r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, wrapDBError(err, "查询图书列表失败")
	}

	books = make([]book.Book, 0, len(models))
	for _, m := range models {
		books = append(books, toBookEntity(m))
	}
	return books, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id int64) (b book.Book, ok bool, err error) {
	defer observe(resourceBook, "get", time.Now(), &err)

	var model BookModel
	err = r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.Book{}, false, nil
		}
		return book.Book{}, false, wrapDBError(err, "查询图书失败")
	}

	return toBookEntity(model), true, nil
}

// Create 创建图书
// 教学要点:
// 1. ID由数据库分配,插入时忽略传入的ID
// 2. 插入0行或拿不到自增ID都视为失败,调用方不会拿到一个ID为0的"已创建"图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) (err error) {
	defer observe(resourceBook, "create", time.Now(), &err)

	model := toBookModel(b)
	model.ID = 0

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return wrapDBError(result.Error, "创建图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrCreateNoEffect
	}
	if model.ID == 0 {
		return book.ErrNoGeneratedID
	}

	// 回填自增ID
	b.ID = model.ID
	return nil
}

// Update 整体覆盖四个可变字段
// 用map更新,零值(空字符串、0价格)也会写入
func (r *bookRepository) Update(ctx context.Context, b *book.Book) (err error) {
	defer observe(resourceBook, "update", time.Now(), &err)

	err = r.db.WithContext(ctx).
		Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title":  b.Title,
			"author": b.Author,
			"genre":  b.Genre,
			"price":  b.Price,
		}).Error
	if err != nil {
		return wrapDBError(err, "更新图书失败")
	}
	return nil
}

// Delete 按ID删除,不存在时静默成功
func (r *bookRepository) Delete(ctx context.Context, id int64) (err error) {
	defer observe(resourceBook, "delete", time.Now(), &err)

	if err = r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookModel{}).Error; err != nil {
		return wrapDBError(err, "删除图书失败")
	}
	return nil
}

// observe 记录仓储指标,配合具名返回值在defer中使用
func observe(resource, operation string, start time.Time, errp *error) {
	metrics.ObserveRepository(resource, operation, start, *errp)
}
