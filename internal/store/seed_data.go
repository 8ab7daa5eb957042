package store

import "github.com/caltrack/caltrack/models"

// catalogSeed is the fixed food reference catalog: 75 foods across 9
// categories with calories per 100g. Inserted once on first startup.
var catalogSeed = []models.CatalogFood{
	// Fruits
	{Name: "Apple", CaloriesPer100g: 52, Category: "Fruits"},
	{Name: "Banana", CaloriesPer100g: 89, Category: "Fruits"},
	{Name: "Orange", CaloriesPer100g: 47, Category: "Fruits"},
	{Name: "Strawberry", CaloriesPer100g: 32, Category: "Fruits"},
	{Name: "Grapes", CaloriesPer100g: 62, Category: "Fruits"},
	{Name: "Pineapple", CaloriesPer100g: 50, Category: "Fruits"},
	{Name: "Mango", CaloriesPer100g: 60, Category: "Fruits"},
	{Name: "Watermelon", CaloriesPer100g: 30, Category: "Fruits"},
	{Name: "Peach", CaloriesPer100g: 39, Category: "Fruits"},
	{Name: "Pear", CaloriesPer100g: 57, Category: "Fruits"},

	// Vegetables
	{Name: "Broccoli", CaloriesPer100g: 34, Category: "Vegetables"},
	{Name: "Carrot", CaloriesPer100g: 41, Category: "Vegetables"},
	{Name: "Spinach", CaloriesPer100g: 23, Category: "Vegetables"},
	{Name: "Tomato", CaloriesPer100g: 18, Category: "Vegetables"},
	{Name: "Cucumber", CaloriesPer100g: 16, Category: "Vegetables"},
	{Name: "Bell Pepper", CaloriesPer100g: 31, Category: "Vegetables"},
	{Name: "Onion", CaloriesPer100g: 40, Category: "Vegetables"},
	{Name: "Lettuce", CaloriesPer100g: 15, Category: "Vegetables"},
	{Name: "Potato", CaloriesPer100g: 77, Category: "Vegetables"},
	{Name: "Sweet Potato", CaloriesPer100g: 86, Category: "Vegetables"},

	// Grains & Cereals
	{Name: "White Rice", CaloriesPer100g: 130, Category: "Grains"},
	{Name: "Brown Rice", CaloriesPer100g: 111, Category: "Grains"},
	{Name: "Quinoa", CaloriesPer100g: 120, Category: "Grains"},
	{Name: "Oats", CaloriesPer100g: 389, Category: "Grains"},
	{Name: "Wheat Bread", CaloriesPer100g: 265, Category: "Grains"},
	{Name: "Whole Wheat Bread", CaloriesPer100g: 247, Category: "Grains"},
	{Name: "Pasta", CaloriesPer100g: 131, Category: "Grains"},
	{Name: "Barley", CaloriesPer100g: 354, Category: "Grains"},
	{Name: "Corn", CaloriesPer100g: 86, Category: "Grains"},
	{Name: "Buckwheat", CaloriesPer100g: 343, Category: "Grains"},

	// Proteins
	{Name: "Chicken Breast", CaloriesPer100g: 165, Category: "Proteins"},
	{Name: "Salmon", CaloriesPer100g: 208, Category: "Proteins"},
	{Name: "Tuna", CaloriesPer100g: 144, Category: "Proteins"},
	{Name: "Beef", CaloriesPer100g: 250, Category: "Proteins"},
	{Name: "Pork", CaloriesPer100g: 242, Category: "Proteins"},
	{Name: "Eggs", CaloriesPer100g: 155, Category: "Proteins"},
	{Name: "Tofu", CaloriesPer100g: 76, Category: "Proteins"},
	{Name: "Lentils", CaloriesPer100g: 116, Category: "Proteins"},
	{Name: "Black Beans", CaloriesPer100g: 132, Category: "Proteins"},
	{Name: "Chickpeas", CaloriesPer100g: 164, Category: "Proteins"},

	// Dairy
	{Name: "Milk (Whole)", CaloriesPer100g: 61, Category: "Dairy"},
	{Name: "Milk (Skim)", CaloriesPer100g: 34, Category: "Dairy"},
	{Name: "Cheddar Cheese", CaloriesPer100g: 403, Category: "Dairy"},
	{Name: "Greek Yogurt", CaloriesPer100g: 59, Category: "Dairy"},
	{Name: "Butter", CaloriesPer100g: 717, Category: "Dairy"},
	{Name: "Cream", CaloriesPer100g: 345, Category: "Dairy"},
	{Name: "Cottage Cheese", CaloriesPer100g: 98, Category: "Dairy"},
	{Name: "Mozzarella", CaloriesPer100g: 280, Category: "Dairy"},
	{Name: "Parmesan", CaloriesPer100g: 431, Category: "Dairy"},
	{Name: "Ice Cream", CaloriesPer100g: 207, Category: "Dairy"},

	// Nuts & Seeds
	{Name: "Almonds", CaloriesPer100g: 579, Category: "Nuts"},
	{Name: "Walnuts", CaloriesPer100g: 654, Category: "Nuts"},
	{Name: "Peanuts", CaloriesPer100g: 567, Category: "Nuts"},
	{Name: "Cashews", CaloriesPer100g: 553, Category: "Nuts"},
	{Name: "Sunflower Seeds", CaloriesPer100g: 584, Category: "Nuts"},
	{Name: "Pumpkin Seeds", CaloriesPer100g: 559, Category: "Nuts"},
	{Name: "Chia Seeds", CaloriesPer100g: 486, Category: "Nuts"},
	{Name: "Flax Seeds", CaloriesPer100g: 534, Category: "Nuts"},
	{Name: "Pistachios", CaloriesPer100g: 560, Category: "Nuts"},
	{Name: "Brazil Nuts", CaloriesPer100g: 659, Category: "Nuts"},

	// Oils & Fats
	{Name: "Olive Oil", CaloriesPer100g: 884, Category: "Oils"},
	{Name: "Coconut Oil", CaloriesPer100g: 862, Category: "Oils"},
	{Name: "Avocado", CaloriesPer100g: 160, Category: "Oils"},
	{Name: "Canola Oil", CaloriesPer100g: 884, Category: "Oils"},
	{Name: "Sesame Oil", CaloriesPer100g: 884, Category: "Oils"},

	// Beverages
	{Name: "Coffee", CaloriesPer100g: 2, Category: "Beverages"},
	{Name: "Tea", CaloriesPer100g: 1, Category: "Beverages"},
	{Name: "Orange Juice", CaloriesPer100g: 45, Category: "Beverages"},
	{Name: "Apple Juice", CaloriesPer100g: 46, Category: "Beverages"},
	{Name: "Soda", CaloriesPer100g: 41, Category: "Beverages"},

	// Snacks
	{Name: "Potato Chips", CaloriesPer100g: 536, Category: "Snacks"},
	{Name: "Chocolate", CaloriesPer100g: 546, Category: "Snacks"},
	{Name: "Cookies", CaloriesPer100g: 502, Category: "Snacks"},
	{Name: "Crackers", CaloriesPer100g: 431, Category: "Snacks"},
	{Name: "Popcorn", CaloriesPer100g: 387, Category: "Snacks"},
}
