package service

import (
	"fmt"
	"io"

	models "cart-manager/model"
	"cart-manager/store"

	"go.uber.org/zap"
)

// EmptyCartMessage is the whole output of Display for an empty cart.
const EmptyCartMessage = "The cart is empty."

type Service struct {
	cart  *models.Cart
	store store.Store
	log   *zap.Logger
}

func NewService(s store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cart: models.NewCart(), store: s, log: logger}
}

func (s *Service) AddItem(item models.Item) {
	s.cart.Add(item)
	s.log.Info("item added",
		zap.String("name", item.Name),
		zap.Stringer("kind", item.Kind),
		zap.Float64("cost", item.Cost()),
		zap.Int("items", s.cart.Len()),
	)
}

// RemoveItem removes every item named name (case-insensitive) and reports
// how many went. Removing a name that isn't in the cart is not an error.
func (s *Service) RemoveItem(name string) int {
	n := s.cart.RemoveByName(name)
	s.log.Info("items removed", zap.String("name", name), zap.Int("removed", n), zap.Int("items", s.cart.Len()))
	return n
}

// Save writes the current cart through the store. The in-memory cart is
// left untouched whatever the outcome.
func (s *Service) Save() error {
	items := s.cart.Items()
	if err := s.store.Save(items); err != nil {
		s.log.Warn("save failed", zap.String("path", s.store.Path()), zap.Error(err))
		return fmt.Errorf("save %s: %w", s.store.Path(), err)
	}
	s.log.Info("cart saved", zap.String("path", s.store.Path()), zap.Int("items", len(items)))
	return nil
}

// Load replaces the cart with the stored snapshot. On error the current
// cart is kept as it was.
func (s *Service) Load() error {
	items, err := s.store.Load()
	if err != nil {
		s.log.Warn("load failed", zap.String("path", s.store.Path()), zap.Error(err))
		return fmt.Errorf("load %s: %w", s.store.Path(), err)
	}
	s.cart.Replace(items)
	s.log.Info("cart loaded", zap.String("path", s.store.Path()), zap.Int("items", len(items)))
	return nil
}

// Display writes one "<name> - $<cost>" line per item followed by the total,
// or only EmptyCartMessage when there is nothing in the cart.
func (s *Service) Display(w io.Writer) error {
	items := s.cart.Items()
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, EmptyCartMessage)
		return err
	}

	var total float64
	for _, it := range items {
		cost := it.Cost()
		total += cost
		if _, err := fmt.Fprintf(w, "%s - $%.2f\n", it.Name, cost); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total cost: $%.2f\n", total)
	return err
}

func (s *Service) Items() []models.Item { return s.cart.Items() }

func (s *Service) Total() float64 { return s.cart.Total() }
