package catalog

import (
	"github.com/optp-storefront/internal/models"
)

// BuiltinCategories 内置菜单分类
func BuiltinCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Deals", IDPrefix: 100, SortOrder: 1},
		{ID: 2, Name: "Loaded Fries", IDPrefix: 200, SortOrder: 2},
		{ID: 3, Name: "Flatbreads", IDPrefix: 300, SortOrder: 3},
		{ID: 4, Name: "Burgers", IDPrefix: 400, SortOrder: 4},
		{ID: 5, Name: "Sides", IDPrefix: 500, SortOrder: 5},
		{ID: 6, Name: "Desserts", IDPrefix: 600, SortOrder: 6},
	}
}

// BuiltinAddOns 内置配料（酱料 7xx、饮品 8xx）
func BuiltinAddOns() []models.AddOn {
	return []models.AddOn{
		{ID: 701, Name: "Ketchup", Price: models.NewMoneyFromInt(20), SortOrder: 1},
		{ID: 702, Name: "Mayonnaise", Price: models.NewMoneyFromInt(20), SortOrder: 2},
		{ID: 703, Name: "Garlic Mayo", Price: models.NewMoneyFromInt(30), SortOrder: 3},
		{ID: 704, Name: "Hot Sauce", Price: models.NewMoneyFromInt(30), SortOrder: 4},
		{ID: 801, Name: "Coca Cola", Price: models.NewMoneyFromInt(80), SortOrder: 5},
		{ID: 802, Name: "Sprite", Price: models.NewMoneyFromInt(80), SortOrder: 6},
		{ID: 803, Name: "Fanta", Price: models.NewMoneyFromInt(80), SortOrder: 7},
	}
}

// BuiltinProducts 内置商品
func BuiltinProducts() []models.Product {
	return []models.Product{
		{
			ID:            107,
			CategoryID:    1,
			Name:          "007",
			Description:   "The name's Seven..007. Pure beef perfection in every bite. 7 ounces of juicy goodness, pickles, double cheese, and our classified sauce.",
			Price:         models.NewMoneyFromInt(1190),
			Image:         "https://em-cdn.eatmubarak.pk/24/dish_image/1725956033.png",
			IsNew:         true,
			Calories:      intPtr(985),
			AllowedAddOns: models.UintArray{701, 702, 703, 704, 801},
			SortOrder:     1,
		},
		{
			ID:            108,
			CategoryID:    1,
			Name:          "Fish & Chips",
			Description:   "Fresh fish fillet, golden fried to perfection, served with our world-famous fries.",
			Price:         models.NewMoneyFromInt(1150),
			Image:         "https://g-cdn.blinkco.io/ordering-system/24/dish_image/1729590129.png",
			IsNew:         true,
			Calories:      intPtr(750),
			AllowedAddOns: models.UintArray{701, 702, 703, 704},
			SortOrder:     2,
		},
		{
			ID:            201,
			CategoryID:    2,
			Name:          "Classic Loaded Fries",
			Description:   "Our signature fries topped with melted cheese and crispy bacon bits.",
			Price:         models.NewMoneyFromInt(450),
			Image:         "https://example.com/classic-loaded-fries.jpg",
			Calories:      intPtr(600),
			AllowedAddOns: models.UintArray{701, 702, 703, 704},
			SortOrder:     3,
		},
		{
			ID:            301,
			CategoryID:    3,
			Name:          "Chicken Tikka Flatbread",
			Description:   "Tender chicken tikka pieces on a crispy flatbread with fresh veggies and our special sauce.",
			Price:         models.NewMoneyFromInt(550),
			Image:         "https://example.com/chicken-tikka-flatbread.jpg",
			Calories:      intPtr(480),
			AllowedAddOns: models.UintArray{701, 702, 703, 704},
			SortOrder:     4,
		},
		{
			ID:            401,
			CategoryID:    4,
			Name:          "Classic Beef Burger",
			Description:   "Juicy beef patty with fresh lettuce, tomatoes, and our secret sauce on a toasted bun.",
			Price:         models.NewMoneyFromInt(650),
			Image:         "https://example.com/classic-beef-burger.jpg",
			Calories:      intPtr(750),
			AllowedAddOns: models.UintArray{701, 702, 703, 704},
			SortOrder:     5,
		},
	}
}

// BuiltinSnapshot 基于内置数据构建目录快照
func BuiltinSnapshot() *Snapshot {
	return NewSnapshot(BuiltinCategories(), BuiltinAddOns(), BuiltinProducts())
}

func intPtr(v int) *int {
	return &v
}
