package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"dora-eats/internal/checkout"
	"dora-eats/internal/metrics"
	"dora-eats/internal/models"
	"dora-eats/internal/repository"
)

type Menu interface {
	Menu(category string) ([]models.MenuItem, error)
	Categories() ([]string, error)
	Bestsellers() ([]models.MenuItem, error)
	MenuItem(id string) (models.MenuItem, error)
	FormatPrice(amount int) string
}

type Cart interface {
	Cart(sessionID string) models.Cart
	AddToCart(ctx context.Context, sessionID, itemID string, qty int) (models.Cart, error)
	ChangeQuantity(sessionID, itemID string, delta int) (models.Cart, error)
	RemoveFromCart(sessionID, itemID string) (models.Cart, error)
}

type Checkout interface {
	CheckoutOptions() CheckoutOptions
	ValidateOrder(ctx context.Context, fields models.Fields) (models.OrderRequest, error)
	PlaceOrder(ctx context.Context, sessionID string, fields models.Fields) (models.PlacedOrder, error)
	GetOrder(number string) (models.PlacedOrder, error)
}

type Storefront interface {
	Menu
	Cart
	Checkout
}

// OrderPlacer hands a placed order to whatever fulfils it. Place is called
// once per order and is never retried.
type OrderPlacer interface {
	Place(ctx context.Context, order models.PlacedOrder) error
}

type NotificationKind string

const (
	NotifyCartAdded  NotificationKind = "cart_added"
	NotifyProcessing NotificationKind = "processing"
	NotifyPlaced     NotificationKind = "placed"
	NotifyFailed     NotificationKind = "failed"
)

type Notification struct {
	Kind        NotificationKind
	SessionID   string
	OrderNumber string
	Title       string
	Description string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n Notification) {
	e := logrus.WithFields(logrus.Fields{
		"kind":    n.Kind,
		"session": n.SessionID,
	})
	if n.OrderNumber != "" {
		e = e.WithField("order", n.OrderNumber)
	}
	if n.Kind == NotifyFailed {
		e.Warn(n.Title)
		return
	}
	e.Info(n.Title)
}

type Settings struct {
	Checkout       checkout.Options
	CurrencySymbol string
	EstimatedTime  string
}

type Option func(*Service)

func WithMetrics(m *metrics.Registry) Option { return func(s *Service) { s.metrics = m } }

func WithNotifier(n Notifier) Option { return func(s *Service) { s.notifier = n } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithOrderNumbers replaces the random DORA-NNNNN generator.
func WithOrderNumbers(next func() string) Option { return func(s *Service) { s.nextNumber = next } }

type Service struct {
	repo      *repository.Repository
	placer    OrderPlacer
	validator *checkout.Validator
	options   checkout.Options
	money     models.Money
	eta       string

	notifier   Notifier
	metrics    *metrics.Registry
	now        func() time.Time
	nextNumber func() string

	carts sessionLocks
}

func NewService(repo *repository.Repository, placer OrderPlacer, settings Settings, opts ...Option) *Service {
	if settings.CurrencySymbol == "" {
		settings.CurrencySymbol = "¥"
	}
	if settings.EstimatedTime == "" {
		settings.EstimatedTime = "approx. 25-35 minutes"
	}

	s := &Service{
		repo:       repo,
		placer:     placer,
		validator:  checkout.New(settings.Checkout),
		options:    settings.Checkout,
		money:      models.NewMoney(settings.CurrencySymbol),
		eta:        settings.EstimatedTime,
		notifier:   LogNotifier{},
		now:        time.Now,
		nextNumber: orderNumber,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) notify(ctx context.Context, n Notification) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}
