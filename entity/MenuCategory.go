package entity

// Menu item categories.
const (
	CategoryAppetizer  = "appetizer"
	CategoryMainCourse = "main_course"
	CategoryDessert    = "dessert"
	CategoryBeverage   = "beverage"
	CategorySpecial    = "special"
	CategoryOther      = "other"
)

var categoryNames = map[string]string{
	CategoryAppetizer:  "Appetizer",
	CategoryMainCourse: "Main Course",
	CategoryDessert:    "Dessert",
	CategoryBeverage:   "Beverage",
	CategorySpecial:    "Special",
	CategoryOther:      "Other",
}

func ValidMenuCategory(s string) bool {
	_, ok := categoryNames[s]
	return ok
}
