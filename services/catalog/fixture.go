package catalog

import (
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var (
	categoryFruitsVegetables = Category{
		UID:   "cat1",
		Name:  "Fruits & Vegetables",
		Image: "https://images.unsplash.com/photo-1610832958506-aa56368176cf?q=80&w=1470&auto=format&fit=crop",
	}
	categoryDairyEggs = Category{
		UID:   "cat2",
		Name:  "Dairy & Eggs",
		Image: "https://images.unsplash.com/photo-1628088062854-d1870b4553da?q=80&w=1470&auto=format&fit=crop",
	}
	categoryMeatSeafood = Category{
		UID:   "cat3",
		Name:  "Meat & Seafood",
		Image: "https://images.unsplash.com/photo-1607623814075-e51df1bdc82f?q=80&w=1470&auto=format&fit=crop",
	}
	categoryBakery = Category{
		UID:   "cat4",
		Name:  "Bakery",
		Image: "https://images.unsplash.com/photo-1608198093002-ad4e005484ec?q=80&w=1470&auto=format&fit=crop",
	}
	categoryBeverages = Category{
		UID:   "cat5",
		Name:  "Beverages",
		Image: "https://images.unsplash.com/photo-1596803244618-8dea4ebff6c2?q=80&w=1469&auto=format&fit=crop",
	}
	categorySnacks = Category{
		UID:   "cat6",
		Name:  "Snacks",
		Image: "https://images.unsplash.com/photo-1621939514649-280e2ee25f60?q=80&w=1470&auto=format&fit=crop",
	}
)

func fixtureCategories() []Category {
	return []Category{
		categoryFruitsVegetables,
		categoryDairyEggs,
		categoryMeatSeafood,
		categoryBakery,
		categoryBeverages,
		categorySnacks,
	}
}

func fixtureProducts() []Product {
	return []Product{
		{
			UID:           "prod1",
			Name:          "Organic Bananas",
			Description:   "Fresh organic bananas from local farms. Rich in potassium and perfect for smoothies or a quick snack.",
			Price:         price("2.99"),
			DiscountPrice: discount("2.49"),
			Images:        []string{"https://images.unsplash.com/photo-1603833665858-e61d17a86224?q=80&w=1374&auto=format&fit=crop"},
			Category:      categoryFruitsVegetables,
			InStock:       true,
			StockQuantity: 100,
			Unit:          "kg",
			Rating:        4.5,
			Featured:      true,
			Tags:          []string{"organic", "fruit", "fresh"},
		},
		{
			UID:           "prod2",
			Name:          "Fresh Milk",
			Description:   "Pasteurized whole milk from grass-fed cows. Rich and creamy with essential nutrients.",
			Price:         price("3.49"),
			Images:        []string{"https://images.unsplash.com/photo-1563636619-e9143da7973b?q=80&w=1470&auto=format&fit=crop"},
			Category:      categoryDairyEggs,
			InStock:       true,
			StockQuantity: 50,
			Unit:          "liter",
			Rating:        4.8,
			Featured:      true,
			Tags:          []string{"dairy", "fresh"},
		},
		{
			UID:           "prod3",
			Name:          "Chicken Breast",
			Description:   "Boneless, skinless chicken breast. High in protein and perfect for various recipes.",
			Price:         price("8.99"),
			DiscountPrice: discount("7.99"),
			Images:        []string{"https://images.unsplash.com/photo-1604503468506-a8da13d82791?q=80&w=1374&auto=format&fit=crop"},
			Category:      categoryMeatSeafood,
			InStock:       true,
			StockQuantity: 30,
			Unit:          "kg",
			Rating:        4.3,
			Tags:          []string{"meat", "protein"},
		},
		{
			UID:           "prod4",
			Name:          "Whole Wheat Bread",
			Description:   "Freshly baked whole wheat bread. High in fiber and perfect for sandwiches.",
			Price:         price("4.29"),
			Images:        []string{"https://images.unsplash.com/photo-1598373182133-52452f7691ef?q=80&w=1470&auto=format&fit=crop"},
			Category:      categoryBakery,
			InStock:       true,
			StockQuantity: 20,
			Unit:          "loaf",
			Rating:        4.6,
			Featured:      true,
			Tags:          []string{"bakery", "whole grain"},
		},
		{
			UID:           "prod5",
			Name:          "Orange Juice",
			Description:   "Freshly squeezed orange juice. Rich in vitamin C and perfect for breakfast.",
			Price:         price("5.99"),
			Images:        []string{"https://images.unsplash.com/photo-1600271886742-f049cd451bba?q=80&w=1374&auto=format&fit=crop"},
			Category:      categoryBeverages,
			InStock:       true,
			StockQuantity: 40,
			Unit:          "liter",
			Rating:        4.7,
			Tags:          []string{"beverage", "juice", "fresh"},
		},
		{
			UID:           "prod6",
			Name:          "Potato Chips",
			Description:   "Crispy potato chips with sea salt. Perfect for snacking.",
			Price:         price("3.99"),
			DiscountPrice: discount("2.99"),
			Images:        []string{"https://images.unsplash.com/photo-1566478989037-eec170784d0b?q=80&w=1470&auto=format&fit=crop"},
			Category:      categorySnacks,
			InStock:       true,
			StockQuantity: 60,
			Unit:          "pack",
			Rating:        4.2,
			Tags:          []string{"snack", "chips"},
		},
		{
			UID:           "prod7",
			Name:          "Red Apples",
			Description:   "Fresh red apples. Sweet and crispy, perfect for snacking or baking.",
			Price:         price("4.49"),
			Images:        []string{"https://images.unsplash.com/photo-1570913149827-d2ac84ab3f9a?q=80&w=1470&auto=format&fit=crop"},
			Category:      categoryFruitsVegetables,
			InStock:       true,
			StockQuantity: 80,
			Unit:          "kg",
			Rating:        4.4,
			Tags:          []string{"fruit", "fresh"},
		},
		{
			UID:           "prod8",
			Name:          "Eggs",
			Description:   "Farm fresh eggs from free-range chickens. Rich in protein and essential nutrients.",
			Price:         price("5.99"),
			Images:        []string{"https://images.unsplash.com/photo-1506976785307-8732e854ad03?q=80&w=1470&auto=format&fit=crop"},
			Category:      categoryDairyEggs,
			InStock:       true,
			StockQuantity: 100,
			Unit:          "dozen",
			Rating:        4.9,
			Featured:      true,
			Tags:          []string{"dairy", "protein"},
		},
	}
}
