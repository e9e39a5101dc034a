package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // cents
	Category    string `gorm:"default:other;index" json:"category"`

	Images StringList `gorm:"type:text" json:"images"`

	// AR asset references per platform (.glb/.gltf for Android, .usdz for iOS)
	ARModelAndroid string `json:"arModelAndroid"`
	ARModelIOS     string `json:"arModelIos"`

	IsVegetarian bool `gorm:"default:false" json:"isVegetarian"`
	IsVegan      bool `gorm:"default:false" json:"isVegan"`
	IsGlutenFree bool `gorm:"default:false" json:"isGlutenFree"`
	SpicyLevel   int  `gorm:"default:0" json:"spicyLevel"` // 0-5

	PreparationTime int  `gorm:"default:15" json:"preparationTime"` // minutes
	IsAvailable     bool `gorm:"default:true" json:"isAvailable"`

	Tags      StringList `gorm:"type:text" json:"tags"`
	Allergens StringList `gorm:"type:text" json:"allergens"`
	SortOrder int        `gorm:"default:0" json:"sortOrder"`

	OrderItems []OrderItem `json:"-"`
}

// CategoryName maps the stored category key to its display name.
func (m *MenuItem) CategoryName() string {
	if name, ok := categoryNames[m.Category]; ok {
		return name
	}
	return m.Category
}
