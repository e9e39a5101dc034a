package controllers

import (
	"errors"
	"strconv"

	"github.com/Ayush29kumar/Restraunt-SaaS/entity"
	"github.com/Ayush29kumar/Restraunt-SaaS/pkg/resp"
	"github.com/Ayush29kumar/Restraunt-SaaS/repository"
	"github.com/Ayush29kumar/Restraunt-SaaS/services"
	"github.com/Ayush29kumar/Restraunt-SaaS/utils"

	"github.com/gin-gonic/gin"
)

// fail maps service/repository error categories onto the response envelope.
// NotFound deliberately carries no hint of whether the entity exists in
// another tenant.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, repository.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, "invalid credentials")
	default:
		resp.ServerError(c, err)
	}
}

// tenantID resolves the tenant an admin/staff request operates on: the
// token's restaurant for scoped roles, an explicit ?restaurantId= for
// superadmin.
func tenantID(c *gin.Context) uint {
	if utils.CurrentRole(c) == entity.RoleSuperAdmin {
		id, _ := strconv.ParseUint(c.Query("restaurantId"), 10, 64)
		return uint(id)
	}
	return utils.CurrentRestaurantID(c)
}

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}

func queryID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return uint(id)
}
