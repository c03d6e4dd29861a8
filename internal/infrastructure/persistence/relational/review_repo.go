package relational

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/review"
)

const resourceReview = "review"

// reviewRepository 评论仓储实现
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) (reviews []review.Review, err error) {
	defer observe(resourceReview, "list", time.Now(), &err)

	rows, err := r.query(ctx, reviewSelect())
	if err != nil {
		return nil, wrapDBError(err, "查询评论列表失败")
	}
	return toReviewEntities(rows), nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (rv review.Review, ok bool, err error) {
	defer observe(resourceReview, "get", time.Now(), &err)

	rows, err := r.query(ctx, reviewSelect().Where(sq.Eq{"r.id": id}))
	if err != nil {
		return review.Review{}, false, wrapDBError(err, "查询评论失败")
	}
	if len(rows) == 0 {
		return review.Review{}, false, nil
	}
	return rows[0].toEntity(), true, nil
}

func (r *reviewRepository) ListByBookID(ctx context.Context, bookID int64) (reviews []review.Review, err error) {
	defer observe(resourceReview, "list_by_book", time.Now(), &err)

	rows, err := r.query(ctx, reviewSelect().Where(sq.Eq{"r.book_id": bookID}))
	if err != nil {
		return nil, wrapDBError(err, "查询图书评论失败")
	}
	return toReviewEntities(rows), nil
}

// Create 创建评论
// book_id指向不存在的图书时由外键约束拒绝
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) (err error) {
	defer observe(resourceReview, "create", time.Now(), &err)

	model := toReviewModel(rv)
	model.ID = 0

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model)
	if result.Error != nil {
		return wrapDBError(result.Error, "创建评论失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrCreateNoEffect
	}
	if model.ID == 0 {
		return review.ErrNoGeneratedID
	}

	rv.ID = model.ID
	rv.BookID = model.BookID
	return nil
}

// Update 覆盖book_id/reviewer/rating/text,评论可以改挂到另一本书
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) (err error) {
	defer observe(resourceReview, "update", time.Now(), &err)

	err = r.db.WithContext(ctx).
		Model(&ReviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"book_id":  rv.OwningBookID(),
			"reviewer": rv.Reviewer,
			"rating":   rv.Rating,
			"text":     rv.Text,
		}).Error
	if err != nil {
		return wrapDBError(err, "更新评论失败")
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) (err error) {
	defer observe(resourceReview, "delete", time.Now(), &err)

	if err = r.db.WithContext(ctx).Where("id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
		return wrapDBError(err, "删除评论失败")
	}
	return nil
}

func (r *reviewRepository) query(ctx context.Context, q sq.SelectBuilder) ([]reviewRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []reviewRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func toReviewEntities(rows []reviewRow) []review.Review {
	return lo.Map(rows, func(row reviewRow, _ int) review.Review {
		return row.toEntity()
	})
}
