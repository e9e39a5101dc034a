package controllers

import (
	"errors"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/pkg/resp"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/services"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"

	"github.com/gin-gonic/gin"
)

type SuperAdminController struct {
	Svc *services.RestaurantService
}

func NewSuperAdminController(svc *services.RestaurantService) *SuperAdminController {
	return &SuperAdminController{Svc: svc}
}

// GET /superadmin/dashboard
func (sc *SuperAdminController) Dashboard(c *gin.Context) {
	stats, err := sc.Svc.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /superadmin/restaurants
func (sc *SuperAdminController) List(c *gin.Context) {
	items, err := sc.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /superadmin/restaurants
func (sc *SuperAdminController) Create(c *gin.Context) {
	var in services.ProvisionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := sc.Svc.Provision(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /superadmin/restaurants/:id includes the tenant's admin account.
func (sc *SuperAdminController) Detail(c *gin.Context) {
	rest, err := sc.Svc.Get(paramID(c, "id"))
	if err != nil {
		fail(c, err)
		return
	}

	var admin *entity.User
	if a, err := sc.Svc.Admin(rest.ID); err == nil {
		admin = a
	} else if !errors.Is(err, repository.ErrNotFound) {
		fail(c, err)
		return
	}

	resp.OK(c, gin.H{"restaurant": rest, "admin": admin})
}

// PATCH /superadmin/restaurants/:id
func (sc *SuperAdminController) Update(c *gin.Context) {
	var in services.UpdateRestaurantIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := sc.Svc.Update(paramID(c, "id"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /superadmin/restaurants/:id
func (sc *SuperAdminController) Delete(c *gin.Context) {
	if err := sc.Svc.Delete(paramID(c, "id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
