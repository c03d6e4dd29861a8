// Package book 图书应用服务
//
// 设计说明:
// 1. 服务层只做DTO与实体的转换,然后调用仓储,没有额外业务规则
// 2. 每个方法开一个Span,错误通过具名返回值记录到Span上
// 3. Get用comma-ok返回"是否存在",由HTTP层决定返回404
package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/application/dto"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

const tracerName = "bookshop/application/book"

// Service 图书服务
type Service interface {
	List(ctx context.Context) ([]dto.BookDTO, error)
	Get(ctx context.Context, id int64) (dto.BookDTO, bool, error)
	// Create 成功后把新ID写回in.ID
	Create(ctx context.Context, in *dto.BookDTO) error
	Update(ctx context.Context, in dto.BookDTO) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo book.Repository
}

// NewService 创建图书服务
func NewService(repo book.Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) (_ []dto.BookDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.List")
	defer tracing.Finish(span, &err)

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBookDTOs(books), nil
}

func (s *service) Get(ctx context.Context, id int64) (_ dto.BookDTO, _ bool, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.Get")
	defer tracing.Finish(span, &err)

	b, ok, err := s.repo.FindByID(ctx, id)
	if err != nil || !ok {
		return dto.BookDTO{}, false, err
	}
	return dto.NewBookDTO(b), true, nil
}

func (s *service) Create(ctx context.Context, in *dto.BookDTO) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.Create")
	defer tracing.Finish(span, &err)

	b := in.ToEntity()
	b.ID = 0
	if err := s.repo.Create(ctx, &b); err != nil {
		return err
	}
	in.ID = b.ID
	return nil
}

func (s *service) Update(ctx context.Context, in dto.BookDTO) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.Update")
	defer tracing.Finish(span, &err)

	b := in.ToEntity()
	return s.repo.Update(ctx, &b)
}

func (s *service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService.Delete")
	defer tracing.Finish(span, &err)

	return s.repo.Delete(ctx, id)
}
