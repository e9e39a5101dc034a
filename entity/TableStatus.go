package entity

// Table statuses. The table itself is a plain status holder; the order
// workflow couples it to order placement and terminal transitions.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
	TableCleaning  = "cleaning"
)

// Table locations.
const (
	LocationIndoor  = "indoor"
	LocationOutdoor = "outdoor"
	LocationPatio   = "patio"
	LocationTerrace = "terrace"
	LocationVIP     = "vip"
)

func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning:
		return true
	}
	return false
}

func ValidTableLocation(s string) bool {
	switch s {
	case LocationIndoor, LocationOutdoor, LocationPatio, LocationTerrace, LocationVIP:
		return true
	}
	return false
}
