package services

import (
	"fmt"

	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"
)

// CartService mutates the session-scoped cart. Nothing here touches durable
// storage except menu lookups; the cart itself lives in the session store.
type CartService struct {
	MenuRepo *repository.MenuRepository
}

func NewCartService(menuRepo *repository.MenuRepository) *CartService {
	return &CartService{MenuRepo: menuRepo}
}

// AddItem merges by menu item reference: an existing line gains quantity and
// takes the newer notes; otherwise a new line captures the item's current
// name and price. The caller persists the mutated session.
func (s *CartService) AddItem(sess *session.Session, menuItemID uint, quantity int, notes string) error {
	if quantity <= 0 {
		quantity = 1
	}

	item, err := s.MenuRepo.GetAvailable(sess.RestaurantID, menuItemID)
	if err != nil {
		return err
	}

	if i := sess.Cart.Find(item.ID); i >= 0 {
		sess.Cart.Items[i].Quantity += quantity
		sess.Cart.Items[i].Notes = notes
	} else {
		sess.Cart.Items = append(sess.Cart.Items, session.CartItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   quantity,
			Notes:      notes,
		})
	}
	sess.Cart.Recalculate()
	return nil
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateItem(sess *session.Session, menuItemID uint, quantity int) error {
	i := sess.Cart.Find(menuItemID)
	if i < 0 {
		return fmt.Errorf("%w: item not in cart", repository.ErrNotFound)
	}

	if quantity <= 0 {
		sess.Cart.Items = append(sess.Cart.Items[:i], sess.Cart.Items[i+1:]...)
	} else {
		sess.Cart.Items[i].Quantity = quantity
	}
	sess.Cart.Recalculate()
	return nil
}
