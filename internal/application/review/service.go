// Package review 评论应用服务
package review

import (
	"context"

	"github.com/samber/lo"

	"github.com/xiebiao/bookshop/internal/application/dto"
	"github.com/xiebiao/bookshop/internal/domain/review"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

const tracerName = "bookshop/application/review"

// Service 评论服务
type Service interface {
	List(ctx context.Context) ([]dto.ReviewDTO, error)
	Get(ctx context.Context, id int64) (dto.ReviewDTO, bool, error)
	ListByBook(ctx context.Context, bookID int64) ([]dto.ReviewDTO, error)
	// Create 成功后写回in.ID
	Create(ctx context.Context, in *dto.ReviewDTO) error
	Update(ctx context.Context, in dto.ReviewDTO) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo review.Repository
}

// NewService 创建评论服务
func NewService(repo review.Repository) Service {
	return &service{repo: repo}
}

func toDTO(r review.Review) dto.ReviewDTO {
	b := dto.NewBookDTO(r.Book)
	return dto.NewReviewDTO(r, &b)
}

func toDTOs(reviews []review.Review) []dto.ReviewDTO {
	return lo.Map(reviews, func(r review.Review, _ int) dto.ReviewDTO {
		return toDTO(r)
	})
}

func (s *service) List(ctx context.Context) (_ []dto.ReviewDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewService.List")
	defer tracing.Finish(span, &err)

	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(reviews), nil
}

func (s *service) Get(ctx context.Context, id int64) (_ dto.ReviewDTO, _ bool, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewService.Get")
	defer tracing.Finish(span, &err)

	r, ok, err := s.repo.FindByID(ctx, id)
	if err != nil || !ok {
		return dto.ReviewDTO{}, false, err
	}
	return toDTO(r), true, nil
}

func (s *service) ListByBook(ctx context.Context, bookID int64) (_ []dto.ReviewDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewService.ListByBook")
	defer tracing.Finish(span, &err)

	reviews, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return toDTOs(reviews), nil
}

func (s *service) Create(ctx context.Context, in *dto.ReviewDTO) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewService.Create")
	defer tracing.Finish(span, &err)

	r := in.ToEntity()
	r.ID = 0
	if err := s.repo.Create(ctx, &r); err != nil {
		return err
	}
	in.ID = r.ID
	in.BookID = r.BookID
	return nil
}

func (s *service) Update(ctx context.Context, in dto.ReviewDTO) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewService.Update")
	defer tracing.Finish(span, &err)

	r := in.ToEntity()
	return s.repo.Update(ctx, &r)
}

func (s *service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewService.Delete")
	defer tracing.Finish(span, &err)

	return s.repo.Delete(ctx, id)
}
