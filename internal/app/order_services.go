package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/commerce"
	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/txn"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"
	"github.com/MGTheTrain/servicehub/internal/pkg/validators"
)

// orderService implements the OrderService interface
type orderService struct {
	transactor  txn.Transactor
	orderRepo   commerce.OrderRepository
	productRepo commerce.ProductRepository
	userRepo    users.UserRepository
	renderer    commerce.InvoiceRenderer
	notifier    notifications.Notifier
	logger      logger.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(
	transactor txn.Transactor,
	orderRepo commerce.OrderRepository,
	productRepo commerce.ProductRepository,
	userRepo users.UserRepository,
	renderer commerce.InvoiceRenderer,
	notifier notifications.Notifier,
	logger logger.Logger,
) (commerce.OrderService, error) {
	return &orderService{
		transactor:  transactor,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		notifier:    notifier,
		logger:      logger,
	}, nil
}

// mergeLines sums the quantities of lines naming the same product, keeping first-seen order
func mergeLines(lines []commerce.OrderLine) []commerce.OrderLine {
	index := make(map[string]int, len(lines))
	merged := make([]commerce.OrderLine, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

func (s *orderService) Place(ctx context.Context, actor *users.Principal, input *commerce.PlaceOrderInput) (*commerce.Order, error) {
	if !actor.HasRole(users.RoleCustomer) {
		return nil, apperror.Forbidden("only customers may place orders")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	order := commerce.NewOrder(actor.UserID, input.ShippingAddress)
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, line := range mergeLines(input.Items) {
			product, err := s.productRepo.GetByID(ctx, line.ProductID)
			if err != nil {
				if apperror.Is(err, apperror.KindNotFound) {
					return apperror.FieldValidation("items", "product %s does not exist", line.ProductID)
				}
				return err
			}
			if !product.Active {
				return apperror.FieldValidation("items", "product %s is not available", product.ID)
			}
			if product.Stock < line.Quantity {
				return apperror.FieldValidation("items", "insufficient stock for %s, %d left", product.Name, product.Stock)
			}
			if err := s.productRepo.AdjustStock(ctx, product.ID, -line.Quantity); err != nil {
				return err
			}
			order.AddItem(product, line.Quantity)
		}
		return s.orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed", "orderId", order.ID, "customerId", actor.UserID, "total", order.Total.StringFixed(2))
	s.notifyCustomer(ctx, order)
	return order, nil
}

func (s *orderService) notifyCustomer(ctx context.Context, order *commerce.Order) {
	notifyUser(ctx, s.userRepo, s.notifier, s.logger, order.CustomerID, func(r notifications.Recipient) []notifications.Message {
		return notifications.OrderStatusChanged(r, order.ID, string(order.Status), order.Total.StringFixed(2))
	})
}

func (s *orderService) GetByID(ctx context.Context, actor *users.Principal, orderID string) (*commerce.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && order.CustomerID != actor.UserID {
		return nil, apperror.Forbidden("not allowed to access order %s", orderID)
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, actor *users.Principal, query *commerce.OrderQuery) ([]*commerce.Order, int64, error) {
	if query == nil {
		query = &commerce.OrderQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	switch {
	case actor.IsAdmin():
	case actor.HasRole(users.RoleCustomer):
		query.CustomerID = actor.UserID
	default:
		return nil, 0, apperror.Forbidden("role %s may not list orders", actor.Role)
	}
	return s.orderRepo.List(ctx, query)
}

func (s *orderService) UpdateStatus(ctx context.Context, actor *users.Principal, orderID string, input *commerce.OrderStatusInput) (*commerce.Order, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("only admins may change order status")
	}
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := checkVersion("order", order.ID, input.Version, order.Version); err != nil {
		return nil, err
	}

	expected := order.Version
	from := order.Status
	if err := order.Transition(input.Status, time.Now().UTC()); err != nil {
		return nil, err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.UpdateStatus(ctx, order, expected); err != nil {
			return err
		}
		if !order.Status.Restocks() {
			return nil
		}
		for _, item := range order.Items {
			if err := s.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				if apperror.Is(err, apperror.KindNotFound) {
					s.logger.Warn("cannot restock deleted product", "orderId", order.ID, "productId", item.ProductID)
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed", "orderId", order.ID, "from", string(from), "to", string(order.Status), "actorId", actor.UserID)
	s.notifyCustomer(ctx, order)
	return order, nil
}

func (s *orderService) Invoice(ctx context.Context, actor *users.Principal, orderID string) ([]byte, error) {
	order, err := s.GetByID(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Invoice(order)
}
