package controllers

import (
	"time"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/pkg/resp"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Menu   *services.MenuService
	Tables *services.TableService
	Staff  *services.StaffService
	Orders *services.OrderService
}

func NewAdminController(menu *services.MenuService, tables *services.TableService,
	staff *services.StaffService, orders *services.OrderService) *AdminController {
	return &AdminController{Menu: menu, Tables: tables, Staff: staff, Orders: orders}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	restID := tenantID(c)

	menuCount, err := ac.Menu.Repo.CountForRestaurant(restID)
	if err != nil {
		fail(c, err)
		return
	}
	tables, err := ac.Tables.List(restID)
	if err != nil {
		fail(c, err)
		return
	}
	available := 0
	for i := range tables {
		if tables[i].IsAvailable() {
			available++
		}
	}
	stats, err := ac.Orders.TodayStats(restID)
	if err != nil {
		fail(c, err)
		return
	}
	// pending backlog across all days, not just today's window
	pendingBacklog, err := ac.Orders.Repo.CountByStatus(restID, entity.OrderPending)
	if err != nil {
		fail(c, err)
		return
	}

	resp.OK(c, gin.H{
		"menuItems":       menuCount,
		"tables":          len(tables),
		"tablesAvailable": available,
		"orders":          stats,
		"pendingBacklog":  pendingBacklog,
	})
}

// ----- Menu -----

// GET /admin/menu-items
func (ac *AdminController) ListMenuItems(c *gin.Context) {
	items, err := ac.Menu.List(tenantID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu-items
func (ac *AdminController) CreateMenuItem(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ac.Menu.Create(tenantID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /admin/menu-items/:id
func (ac *AdminController) MenuItemDetail(c *gin.Context) {
	item, err := ac.Menu.Get(tenantID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /admin/menu-items/:id
func (ac *AdminController) UpdateMenuItem(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ac.Menu.Update(tenantID(c), paramID(c, "id"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /admin/menu-items/:id/availability
func (ac *AdminController) SetMenuItemAvailability(c *gin.Context) {
	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ac.Menu.SetAvailability(tenantID(c), paramID(c, "id"), *req.IsAvailable)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu-items/:id
func (ac *AdminController) DeleteMenuItem(c *gin.Context) {
	if err := ac.Menu.Delete(tenantID(c), paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ----- Tables -----

// GET /admin/tables
func (ac *AdminController) ListTables(c *gin.Context) {
	tables, err := ac.Tables.List(tenantID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

// POST /admin/tables
func (ac *AdminController) CreateTable(c *gin.Context) {
	var in services.CreateTableIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	table, err := ac.Tables.Create(tenantID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, table)
}

// GET /admin/tables/:id includes the encoded QR URL.
func (ac *AdminController) TableDetail(c *gin.Context) {
	table, err := ac.Tables.Get(tenantID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, table)
}

// PATCH /admin/tables/:id/status
func (ac *AdminController) UpdateTableStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	table, err := ac.Tables.UpdateStatus(tenantID(c), paramID(c, "id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, table)
}

// DELETE /admin/tables/:id
func (ac *AdminController) DeleteTable(c *gin.Context) {
	if err := ac.Tables.Delete(tenantID(c), paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ----- Staff -----

// GET /admin/staff
func (ac *AdminController) ListStaff(c *gin.Context) {
	staff, err := ac.Staff.List(tenantID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": staff})
}

// POST /admin/staff
func (ac *AdminController) CreateStaff(c *gin.Context) {
	var in services.CreateStaffIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	staff, err := ac.Staff.Create(tenantID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, staff)
}

// PATCH /admin/staff/:id/toggle
func (ac *AdminController) ToggleStaff(c *gin.Context) {
	staff, err := ac.Staff.ToggleActive(tenantID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, staff)
}

// DELETE /admin/staff/:id
func (ac *AdminController) DeleteStaff(c *gin.Context) {
	if err := ac.Staff.Delete(tenantID(c), paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ----- Orders -----

// GET /admin/orders?status=&date=YYYY-MM-DD
func (ac *AdminController) ListOrders(c *gin.Context) {
	f := repository.OrderFilter{Status: c.Query("status")}
	if d := c.Query("date"); d != "" {
		if day, err := time.ParseInLocation("2006-01-02", d, time.Local); err == nil {
			end := day.Add(24*time.Hour - time.Nanosecond)
			f.Since = &day
			f.Until = &end
		}
	}

	orders, err := ac.Orders.List(tenantID(c), f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/orders/:id loads the order with its status history.
func (ac *AdminController) OrderDetail(c *gin.Context) {
	order, err := ac.Orders.Detail(tenantID(c), paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
