// Package order 订单应用服务
package order

import (
	"context"

	"github.com/samber/lo"

	"github.com/xiebiao/bookshop/internal/application/dto"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

const tracerName = "bookshop/application/order"

// Service 订单服务
// 订单字段与图书关联分开修改: Update不动图书,AddBook/RemoveBook不动订单字段
type Service interface {
	List(ctx context.Context) ([]dto.OrderDTO, error)
	Get(ctx context.Context, id int64) (dto.OrderDTO, bool, error)
	ListByBook(ctx context.Context, bookID int64) ([]dto.OrderDTO, error)
	// Create 忽略in.Books,成功后写回ID和实际使用的下单时间
	Create(ctx context.Context, in *dto.OrderDTO) error
	Update(ctx context.Context, in dto.OrderDTO) error
	Delete(ctx context.Context, id int64) error
	AddBook(ctx context.Context, orderID, bookID int64) error
	RemoveBook(ctx context.Context, orderID, bookID int64) error
}

type service struct {
	repo order.Repository
}

// NewService 创建订单服务
func NewService(repo order.Repository) Service {
	return &service{repo: repo}
}

// toDTO 订单里的图书先转成BookDTO,BookDTO没有反向引用
func toDTO(o order.Order) dto.OrderDTO {
	return dto.NewOrderDTO(o, dto.NewBookDTOs(o.Books))
}

func toDTOs(orders []order.Order) []dto.OrderDTO {
	return lo.Map(orders, func(o order.Order, _ int) dto.OrderDTO {
		return toDTO(o)
	})
}

func (s *service) List(ctx context.Context) (_ []dto.OrderDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.List")
	defer tracing.Finish(span, &err)

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

func (s *service) Get(ctx context.Context, id int64) (_ dto.OrderDTO, _ bool, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.Get")
	defer tracing.Finish(span, &err)

	o, ok, err := s.repo.FindByID(ctx, id)
	if err != nil || !ok {
		return dto.OrderDTO{}, false, err
	}
	return toDTO(o), true, nil
}

func (s *service) ListByBook(ctx context.Context, bookID int64) (_ []dto.OrderDTO, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.ListByBook")
	defer tracing.Finish(span, &err)

	orders, err := s.repo.ListByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

func (s *service) Create(ctx context.Context, in *dto.OrderDTO) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.Create")
	defer tracing.Finish(span, &err)

	o := in.ToEntity()
	o.ID = 0
	if err := s.repo.Create(ctx, &o); err != nil {
		return err
	}
	in.ID = o.ID
	in.Date = o.Date
	in.Books = []dto.BookDTO{}
	return nil
}

func (s *service) Update(ctx context.Context, in dto.OrderDTO) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.Update")
	defer tracing.Finish(span, &err)

	o := in.ToEntity()
	return s.repo.Update(ctx, &o)
}

func (s *service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.Delete")
	defer tracing.Finish(span, &err)

	return s.repo.Delete(ctx, id)
}

func (s *service) AddBook(ctx context.Context, orderID, bookID int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.AddBook")
	defer tracing.Finish(span, &err)

	return s.repo.AddBook(ctx, orderID, bookID)
}

func (s *service) RemoveBook(ctx context.Context, orderID, bookID int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "OrderService.RemoveBook")
	defer tracing.Finish(span, &err)

	return s.repo.RemoveBook(ctx, orderID, bookID)
}
