package controllers

import (
	"time"

	"github.com/Ayush29kumar/Restraunt-SaaS/pkg/resp"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/services"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Orders *services.OrderService
}

func NewStaffController(orders *services.OrderService) *StaffController {
	return &StaffController{Orders: orders}
}

// GET /staff/dashboard
func (sc *StaffController) Dashboard(c *gin.Context) {
	restID := tenantID(c)

	stats, err := sc.Orders.TodayStats(restID)
	if err != nil {
		fail(c, err)
		return
	}
	active, err := sc.Orders.ActiveToday(restID)
	if err != nil {
		fail(c, err)
		return
	}

	resp.OK(c, gin.H{"stats": stats, "activeOrders": active})
}

// GET /staff/orders?status=&tableId= lists today's orders by default
func (sc *StaffController) ListOrders(c *gin.Context) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	f := repository.OrderFilter{
		Status:  c.Query("status"),
		TableID: queryID(c, "tableId"),
		Since:   &today,
	}
	if f.Status == "all" {
		f.Status = ""
	}

	orders, err := sc.Orders.List(tenantID(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /staff/orders/:id
func (sc *StaffController) OrderDetail(c *gin.Context) {
	order, err := sc.Orders.Detail(tenantID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order, "preparationMinutes": order.PreparationMinutes()})
}

// PATCH /staff/orders/:id/status
func (sc *StaffController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := sc.Orders.Transition(tenantID(c), paramID(c, "id"), req.Status, utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"newStatus": order.Status, "order": order})
}

// PATCH /staff/orders/:id/payment
func (sc *StaffController) UpdatePayment(c *gin.Context) {
	var req struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := sc.Orders.SetPayment(tenantID(c), paramID(c, "id"), req.PaymentStatus, req.PaymentMethod)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /staff/tables/:tableNumber/order is a quick lookup of a table's active order
func (sc *StaffController) OrderByTable(c *gin.Context) {
	order, err := sc.Orders.ActiveForTable(tenantID(c), c.Param("tableNumber"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
