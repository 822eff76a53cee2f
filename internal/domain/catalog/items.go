package catalog

// menuItems is the static menu. Prices are whole rupees.
var menuItems = []MenuItem{
	{ID: "1", Name: "Its So Chocolatey", Description: "Chocolate Sauce & Premium Cocoa blended with Milk, Ice Cream", Price: 109, Category: CategoryMilkshakes, IsVegetarian: true, IsBestseller: true},
	{ID: "2", Name: "Chocolate Oreo", Description: "Chocolate Shake blended with Crunchy & Creamy Oreo Cookies", Price: 129, Category: CategoryMilkshakes, IsVegetarian: true},
	{ID: "3", Name: "Creamy Oreo Temptation", Description: "Oreo Cookies, Milk, Ice Cream. Topped with Oreo Crumbles", Price: 129, Category: CategoryMilkshakes, IsVegetarian: true},
	{ID: "4", Name: "Kitkat Krunch", Description: "Chocolate Shake blended with Crunchy Kitkat", Price: 129, Category: CategoryMilkshakes, IsVegetarian: true, IsBestseller: true},
	{ID: "5", Name: "Hazelnut Heaven", Description: "Combination of Chocolate shake and Roasted Hazelnuts", Price: 129, Category: CategoryMilkshakes, IsVegetarian: true},
	{ID: "6", Name: "Choco Chip Affair", Description: "Chocolate Shake blended with Crunchy Choco Chips", Price: 129, Category: CategoryMilkshakes, IsVegetarian: true},
	{ID: "7", Name: "Snickers Fest", Description: "A Chocolate shake with caramel & nutty twist of Snickers", Price: 139, Category: CategoryMilkshakes, IsVegetarian: true},
	{ID: "8", Name: "Nutella Madness", Description: "Luscious Nutella blended with Chocolate Sauce, Milk, Ice Cream", Price: 169, Category: CategoryMilkshakes, IsVegetarian: true, IsBestseller: true},
	{ID: "9", Name: "Ferrero Rocher", Description: "Ferrero Rocher Chocolates, Chocolate Sauce, Milk, Ice Cream", Price: 199, Category: CategoryMilkshakes, IsVegetarian: true},
	{ID: "10", Name: "Salted Caramel", Description: "Caramel Sauce, Pink Salt, Milk, Ice Cream", Price: 139, Category: CategoryExoticMilkshakes, IsVegetarian: true},
	{ID: "11", Name: "Pop Caramelito", Description: "Popcorn Syrup, Caramel Sauce, Milk, Ice Cream", Price: 139, Category: CategoryExoticMilkshakes, IsVegetarian: true, IsNew: true},
	{ID: "12", Name: "Lotus Biscoff Caramello Blast", Description: "Blend of Lotus Biscoff spread with Milk and Vanilla Ice Cream", Price: 169, Category: CategoryExoticMilkshakes, IsVegetarian: true, IsBestseller: true},
	{ID: "13", Name: "Childhood Glimpses", Description: "Bubblegum Syrup, Strawberry Syrup, Marshmallows, Milk, Ice Cream", Price: 159, Category: CategoryExoticMilkshakes, IsVegetarian: true},
	{ID: "14", Name: "Coke Float", Description: "Coke topped with Vanilla Ice Cream", Price: 69, Category: CategoryFloats, IsVegetarian: true},
	{ID: "15", Name: "Orange Sunset", Description: "Orange with Vanilla Ice Cream and splash of Sparkling Soda", Price: 99, Category: CategoryFloats, IsVegetarian: true},
	{ID: "16", Name: "Vanilla Velvet", Description: "Vanilla Icecream, Milk, Vanilla Syrup", Price: 119, Category: CategoryClassicShakes, IsVegetarian: true},
	{ID: "17", Name: "Butterscotch Bliss", Description: "Vanilla Icecream, Milk, Butterscoth Syrup", Price: 119, Category: CategoryClassicShakes, IsVegetarian: true},
	{ID: "18", Name: "Tropical Mango", Description: "Blend of Fresh Mango chunks with Milk & Ice Cream", Price: 99, Category: CategoryFruitShakes, IsVegetarian: true},
	{ID: "19", Name: "Blissful Banana", Description: "Banana, Milk, Icecream. Topped with Ice cream & Banana Slices", Price: 99, Category: CategoryFruitShakes, IsVegetarian: true},
	{ID: "20", Name: "Signature Cold Coffee", Description: "A Delicious smooth and icy blend of Davidoff Coffee Shot with Milk and Ice Cream", Price: 119, Category: CategoryCoffee, IsVegetarian: true, IsBestseller: true},
	{ID: "21", Name: "Flavoured Cold Coffee", Description: "Vanilla, Hazelnut, Caramel, Chocolate, Irish Cream, Tiramisu, Brown Butter, Vanilla Hazelnut", Price: 149, Category: CategoryCoffee, IsVegetarian: true},
	{ID: "22", Name: "Mango Magic", Description: "Mango Chunks blended with Greek Yogurt, Milk, Honey and Banana", Price: 199, Category: CategorySmoothies, IsVegetarian: true},
	{ID: "23", Name: "Wild Strawberry", Description: "Strawberries blended with Greek Yogurt, Milk, Honey and Banana", Price: 219, Category: CategorySmoothies, IsVegetarian: true},
	{ID: "24", Name: "Milk Badam", Description: "Creamy blend of Milk, Almonds, Cashew & Hint of Elaichi", Price: 50, Category: CategoryMilkBottle, IsVegetarian: true},
	{ID: "25", Name: "Kesar Pista Milk", Description: "Creamy Blend of Milk, Original Kashmiri Kesar, Pista & Almonds", Price: 60, Category: CategoryMilkBottle, IsVegetarian: true},
	{ID: "26", Name: "Khoya Kulfi", Description: "Traditional Khoya Kulfi, Falooda Noodles, Rabri & Gond Katira", Price: 80, Category: CategoryAmritsariSpecials, IsVegetarian: true, IsBestseller: true},
	{ID: "27", Name: "Rabri Faluda in Glass", Description: "Rich Rabri with Falooda noodles", Price: 130, Category: CategoryAmritsariSpecials, IsVegetarian: true},
	{ID: "28", Name: "Lassi", Description: "Thick and creamy Lassi. Topped with almonds and pista", Price: 60, Category: CategoryAmritsariSpecials, IsVegetarian: true},
	{ID: "29", Name: "Paneer Tikka Sandwich", Description: "Grilled sandwich with spiced paneer tikka, veggies & mint chutney", Price: 149, Category: CategorySavory, IsVegetarian: true, IsBestseller: true},
	{ID: "30", Name: "Masala Fries", Description: "Crispy fries tossed with spicy masala seasoning", Price: 89, Category: CategorySavory, IsVegetarian: true},
	{ID: "31", Name: "Veg Grilled Sandwich", Description: "Classic grilled sandwich with fresh vegetables & cheese", Price: 129, Category: CategorySavory, IsVegetarian: true},
	{ID: "32", Name: "Nachos with Cheese", Description: "Crispy nachos topped with melted cheese & jalapeños", Price: 139, Category: CategorySavory, IsVegetarian: true},
	{ID: "33", Name: "Chilli Cheese Toast", Description: "Toasted bread topped with spicy cheese spread", Price: 99, Category: CategorySavory, IsVegetarian: true},
}
