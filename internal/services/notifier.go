package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/pkg/sendgrid"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	notifyTimeout     = 10 * time.Second
	notifyConcurrency = 4
)

// CheckoutNotifier is told about orders after their checkout has committed.
type CheckoutNotifier interface {
	OrdersPlaced(ctx context.Context, orders []*models.Order) error
}

// EventPublisher is satisfied by *kafka.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, payload any) error
}

type checkoutNotifier struct {
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	emailService sendgrid.EmailService
	publisher    EventPublisher
}

// NewCheckoutNotifier emails sellers and publishes one event per order.
// Either channel may be nil.
func NewCheckoutNotifier(userRepo repository.UserRepository, productRepo repository.ProductRepository, emailService sendgrid.EmailService, publisher EventPublisher) CheckoutNotifier {
	return &checkoutNotifier{
		userRepo:     userRepo,
		productRepo:  productRepo,
		emailService: emailService,
		publisher:    publisher,
	}
}

func (n *checkoutNotifier) OrdersPlaced(ctx context.Context, orders []*models.Order) error {

	if len(orders) == 0 {
		return nil
	}

	// the checkout has already committed
	ctx, cancel := utils.Detached(ctx, notifyTimeout)
	defer cancel()

	var g errgroup.Group
	g.SetLimit(notifyConcurrency)
	errs := make(chan error, len(orders)*2)

	if n.publisher != nil {
		for _, order := range orders {
			g.Go(func() error {
				err := n.publish(ctx, order)
				metrics.RecordNotification("kafka", err)
				if err != nil {
					errs <- err
				}
				return nil
			})
		}
	}

	if n.emailService != nil {
		for sellerID, sold := range groupBySeller(orders) {
			g.Go(func() error {
				err := n.emailSeller(ctx, sellerID, sold)
				metrics.RecordNotification("email", err)
				if err != nil {
					errs <- err
				}
				return nil
			})
		}
	}

	_ = g.Wait()
	close(errs)

	var failures []error
	for err := range errs {
		failures = append(failures, err)
	}

	return errors.Join(failures...)
}

// BackgroundNotifier hands orders to next on its own goroutine so the
// checkout response never waits on email or the broker. Wait drains the
// deliveries still in flight.
type BackgroundNotifier struct {
	next CheckoutNotifier
	wg   sync.WaitGroup
}

func NewBackgroundNotifier(next CheckoutNotifier) *BackgroundNotifier {
	return &BackgroundNotifier{next: next}
}

// OrdersPlaced always returns nil; delivery failures are logged.
func (b *BackgroundNotifier) OrdersPlaced(ctx context.Context, orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ctx = context.WithoutCancel(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		if err := b.next.OrdersPlaced(ctx, orders); err != nil {
			slog.WarnContext(ctx, "Checkout notifications incomplete",
				slog.String("buyerId", orders[0].BuyerID.String()),
				slog.Int("orders", len(orders)),
				slog.Any("error", err))
		}
	}()

	return nil
}

// Wait blocks until pending deliveries finish or ctx is done.
func (b *BackgroundNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *checkoutNotifier) publish(ctx context.Context, order *models.Order) error {
	event := models.OrderPlacedEvent{
		OrderID:      order.ID,
		ProductID:    order.ProductID,
		BuyerID:      order.BuyerID,
		SellerID:     order.SellerID,
		Price:        order.Price,
		PurchaseDate: order.PurchaseDate,
	}

	// Keyed by order so every event for one order shares a partition.
	if err := n.publisher.PublishJSON(ctx, order.ID.String(), event); err != nil {
		return fmt.Errorf("order %s: %w", order.ID, err)
	}

	return nil
}

func (n *checkoutNotifier) emailSeller(ctx context.Context, sellerID uuid.UUID, sold []*models.Order) error {

	seller, err := n.userRepo.GetUserById(ctx, sellerID)
	if err != nil {
		return fmt.Errorf("seller %s: %w", sellerID, err)
	}

	var lines []string
	for _, order := range sold {
		title := order.ProductID.String()
		if product, err := n.productRepo.GetProductByID(ctx, order.ProductID); err == nil {
			title = product.Title
		} else {
			slog.DebugContext(ctx, "Product lookup for sale email failed", slog.String("productId", order.ProductID.String()), slog.Any("error", err))
		}

		lines = append(lines, fmt.Sprintf("- %s for %s", title, order.Price.StringFixed(2)))
	}

	subject := "You made a sale on EcoFinds"
	if len(sold) > 1 {
		subject = fmt.Sprintf("You made %d sales on EcoFinds", len(sold))
	}

	req := &models.EmailNotificationRequest{
		To:      seller.Email,
		ToName:  seller.FullName,
		Subject: subject,
		Content: fmt.Sprintf("Hi %s,\n\nThe following items were just purchased:\n%s\n", seller.FullName, strings.Join(lines, "\n")),
		Metadata: map[string]string{
			"sellerId": sellerID.String(),
			"buyerId":  sold[0].BuyerID.String(),
		},
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		return fmt.Errorf("seller %s: %w", sellerID, err)
	}

	return nil
}

func groupBySeller(orders []*models.Order) map[uuid.UUID][]*models.Order {
	grouped := make(map[uuid.UUID][]*models.Order)
	for _, order := range orders {
		grouped[order.SellerID] = append(grouped[order.SellerID], order)
	}

	return grouped
}
