package controllers

import (
	"github.com/Ayush29kumar/Restraunt-SaaS/middlewares"
	"github.com/Ayush29kumar/Restraunt-SaaS/pkg/resp"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/services"
	"github.com/Ayush29kumar/Restraunt-SaaS/session"

	"github.com/gin-gonic/gin"
)

// CustomerController serves the QR-scan flow: table entry, menu, cart,
// checkout, and the pollable order-status read. Identity is the browsing
// session, not a JWT.
type CustomerController struct {
	Store     *session.Store
	Cart      *services.CartService
	Orders    *services.OrderService
	Menu      *services.MenuService
	RestRepo  *repository.RestaurantRepository
	TableRepo *repository.TableRepository
}

func NewCustomerController(
	store *session.Store,
	cart *services.CartService,
	orders *services.OrderService,
	menu *services.MenuService,
	restRepo *repository.RestaurantRepository,
	tableRepo *repository.TableRepository,
) *CustomerController {
	return &CustomerController{
		Store: store, Cart: cart, Orders: orders, Menu: menu,
		RestRepo: restRepo, TableRepo: tableRepo,
	}
}

// requireSession resolves the bound browsing session or replies 400.
func (cc *CustomerController) requireSession(c *gin.Context) *session.Session {
	sess := middlewares.CurrentSession(c)
	if sess == nil || sess.RestaurantID == 0 {
		resp.BadRequest(c, "no active table session, scan the table QR code first")
		return nil
	}
	return sess
}

func (cc *CustomerController) saveSession(c *gin.Context, sess *session.Session) bool {
	if err := cc.Store.Save(c.Request.Context(), middlewares.SessionID(c), sess); err != nil {
		resp.ServerError(c, err)
		return false
	}
	return true
}

// POST /r/:restaurantSlug/table/:tableNumber is the QR landing. Binds the
// session to this restaurant+table; a different context always starts an
// empty cart.
func (cc *CustomerController) TableEntry(c *gin.Context) {
	rest, err := cc.RestRepo.GetActiveBySlug(c.Param("restaurantSlug"))
	if err != nil {
		fail(c, err)
		return
	}
	table, err := cc.TableRepo.GetActiveByNumber(rest.ID, c.Param("tableNumber"))
	if err != nil {
		fail(c, err)
		return
	}

	sess := middlewares.CurrentSession(c)
	if sess == nil || sess.RestaurantID != rest.ID || sess.TableID != table.ID {
		sess = &session.Session{RestaurantID: rest.ID, TableID: table.ID}
	}
	if !cc.saveSession(c, sess) {
		return
	}

	resp.OK(c, gin.H{
		"restaurant": gin.H{"id": rest.ID, "name": rest.Name, "slug": rest.Slug, "currency": rest.Currency},
		"table":      gin.H{"id": table.ID, "tableNumber": table.TableNumber},
	})
}

// GET /r/:restaurantSlug/menu returns available items grouped by category.
func (cc *CustomerController) ViewMenu(c *gin.Context) {
	rest, err := cc.RestRepo.GetActiveBySlug(c.Param("restaurantSlug"))
	if err != nil {
		fail(c, err)
		return
	}

	menu, err := cc.Menu.CustomerMenu(rest.ID)
	if err != nil {
		fail(c, err)
		return
	}

	cart := session.Cart{}
	if sess := middlewares.CurrentSession(c); sess != nil && sess.RestaurantID == rest.ID {
		cart = sess.Cart
	}

	resp.OK(c, gin.H{"menu": menu, "cart": cart})
}

// GET /r/:restaurantSlug/cart
func (cc *CustomerController) ViewCart(c *gin.Context) {
	sess := cc.requireSession(c)
	if sess == nil {
		return
	}
	resp.OK(c, sess.Cart)
}

type addToCartReq struct {
	ItemID   uint   `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// POST /r/:restaurantSlug/cart/items
func (cc *CustomerController) AddToCart(c *gin.Context) {
	sess := cc.requireSession(c)
	if sess == nil {
		return
	}

	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Cart.AddItem(sess, req.ItemID, req.Quantity, req.Notes); err != nil {
		fail(c, err)
		return
	}
	if !cc.saveSession(c, sess) {
		return
	}
	resp.OK(c, sess.Cart)
}

// PATCH /r/:restaurantSlug/cart/items/:itemId
func (cc *CustomerController) UpdateCartItem(c *gin.Context) {
	sess := cc.requireSession(c)
	if sess == nil {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Cart.UpdateItem(sess, paramID(c, "itemId"), req.Quantity); err != nil {
		fail(c, err)
		return
	}
	if !cc.saveSession(c, sess) {
		return
	}
	resp.OK(c, sess.Cart)
}

type checkoutReq struct {
	Phone string `json:"phone" binding:"required"`
	Notes string `json:"notes"`
}

// POST /r/:restaurantSlug/checkout places the order from the session cart.
// The cart is discarded only after the order is durably placed.
func (cc *CustomerController) Checkout(c *gin.Context) {
	sess := cc.requireSession(c)
	if sess == nil {
		return
	}

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := cc.RestRepo.GetByID(sess.RestaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	table, err := cc.TableRepo.GetForRestaurant(sess.RestaurantID, sess.TableID)
	if err != nil {
		fail(c, err)
		return
	}

	order, err := cc.Orders.PlaceOrder(rest, table, &sess.Cart, req.Phone, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}

	sess.Cart = session.Cart{}
	sess.Phone = req.Phone
	if order.CustomerID != nil {
		sess.CustomerID = *order.CustomerID
	}
	if !cc.saveSession(c, sess) {
		return
	}

	resp.Created(c, gin.H{"orderId": order.ID, "orderNumber": order.OrderNumber, "total": order.Total})
}

// GET /r/:restaurantSlug/orders/:id/status is the pollable status read.
func (cc *CustomerController) OrderStatus(c *gin.Context) {
	sess := cc.requireSession(c)
	if sess == nil {
		return
	}

	order, err := cc.Orders.StatusOf(sess.RestaurantID, paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"status": order.Status, "orderNumber": order.OrderNumber})
}

// GET /r/:restaurantSlug/my-orders
func (cc *CustomerController) MyOrders(c *gin.Context) {
	sess := cc.requireSession(c)
	if sess == nil {
		return
	}
	if sess.CustomerID == 0 {
		resp.OK(c, gin.H{"items": []any{}})
		return
	}

	orders, err := cc.Orders.ListForCustomer(sess.RestaurantID, sess.CustomerID, 20)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}
