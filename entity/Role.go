package entity

// User roles. Closed set: permission checks go through HasPermission only.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleCustomer   = "customer"
)

// Permissions.
const (
	PermManageMenu        = "manage_menu"
	PermManageTables      = "manage_tables"
	PermManageStaff       = "manage_staff"
	PermViewOrders        = "view_orders"
	PermManageOrders      = "manage_orders"
	PermUpdateOrderStatus = "update_order_status"
)

var rolePermissions = map[string][]string{
	RoleAdmin: {
		PermManageMenu, PermManageTables, PermManageStaff,
		PermViewOrders, PermManageOrders, PermUpdateOrderStatus,
	},
	RoleStaff: {
		PermViewOrders, PermUpdateOrderStatus,
	},
	RoleCustomer: {},
}

// HasPermission resolves (role, permission) membership. Superadmin holds
// every permission; customers hold none.
func HasPermission(role, permission string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

func ValidRole(s string) bool {
	switch s {
	case RoleSuperAdmin, RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}
