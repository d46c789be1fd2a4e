package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/sirupsen/logrus"

	"dora-eats/internal/models"
)

// sessionLocks serialises read-modify-write cycles on one session's cart.
type sessionLocks [32]sync.Mutex

func (l *sessionLocks) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	mu := &l[h.Sum32()%uint32(len(l))]
	mu.Lock()
	return mu.Unlock
}

func (s *Service) Cart(sessionID string) models.Cart {
	cart, _ := s.repo.CartCache.GetCart(sessionID)
	return cart
}

func (s *Service) AddToCart(ctx context.Context, sessionID, itemID string, qty int) (models.Cart, error) {
	item, err := s.MenuItem(itemID)
	if err != nil {
		return models.Cart{}, err
	}

	unlock := s.carts.lock(sessionID)
	cart, _ := s.repo.CartCache.GetCart(sessionID)
	cart.Add(item, qty)
	s.repo.CartCache.PutCart(cart)
	unlock()

	s.metrics.ObserveCart("add")
	s.notify(ctx, Notification{
		Kind:        NotifyCartAdded,
		SessionID:   sessionID,
		Title:       fmt.Sprintf("%s added to your cart!", item.Name),
		Description: "Get ready for a delicious treat!",
	})
	return cart, nil
}

func (s *Service) ChangeQuantity(sessionID, itemID string, delta int) (models.Cart, error) {
	defer s.carts.lock(sessionID)()

	cart, _ := s.repo.CartCache.GetCart(sessionID)
	if !cart.ChangeQuantity(itemID, delta) {
		return models.Cart{}, ErrNotFound
	}
	s.repo.CartCache.PutCart(cart)
	s.metrics.ObserveCart("quantity")
	return cart, nil
}

func (s *Service) RemoveFromCart(sessionID, itemID string) (models.Cart, error) {
	defer s.carts.lock(sessionID)()

	cart, _ := s.repo.CartCache.GetCart(sessionID)
	if !cart.Remove(itemID) {
		return models.Cart{}, ErrNotFound
	}
	s.repo.CartCache.PutCart(cart)
	s.metrics.ObserveCart("remove")
	logrus.WithFields(logrus.Fields{"session": sessionID, "item": itemID}).Debug("removed from cart")
	return cart, nil
}
