package catalog

// Category identifies a fixed menu category
type Category string

// Menu categories, fixed at build time
const (
	CategoryMilkshakes        Category = "Milkshakes"
	CategoryExoticMilkshakes  Category = "Exotic Milkshakes"
	CategoryFloats            Category = "Floats"
	CategoryClassicShakes     Category = "Classic Shakes"
	CategoryFruitShakes       Category = "Fruit Shakes"
	CategoryCoffee            Category = "Coffee"
	CategorySmoothies         Category = "Smoothies"
	CategoryMilkBottle        Category = "Milk Bottle"
	CategoryFruitCream        Category = "Fruit Cream"
	CategoryAmritsariSpecials Category = "Amritsari Specials"
	CategorySavory            Category = "Savory"
)

// IsValid checks if the category is one of the fixed menu categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryMilkshakes, CategoryExoticMilkshakes, CategoryFloats,
		CategoryClassicShakes, CategoryFruitShakes, CategoryCoffee,
		CategorySmoothies, CategoryMilkBottle, CategoryFruitCream,
		CategoryAmritsariSpecials, CategorySavory:
		return true
	}
	return false
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// MenuItem is a catalog entry. Items are defined at build time and never
// mutated; Price is in whole rupees.
type MenuItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"`
	Category     Category `json:"category"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsBestseller bool     `json:"is_bestseller,omitempty"`
	IsNew        bool     `json:"is_new,omitempty"`
}

// MenuGroup is a display grouping of categories for navigation
type MenuGroup struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

// Categories returns the fixed category list in display order
func Categories() []Category {
	return []Category{
		CategoryMilkshakes,
		CategoryExoticMilkshakes,
		CategoryFloats,
		CategoryClassicShakes,
		CategoryFruitShakes,
		CategoryCoffee,
		CategorySmoothies,
		CategoryMilkBottle,
		CategoryFruitCream,
		CategoryAmritsariSpecials,
		CategorySavory,
	}
}

// Groups returns the navigation groupings of categories
func Groups() []MenuGroup {
	return []MenuGroup{
		{Name: "Amritsari Specials", Categories: []Category{CategoryAmritsariSpecials, CategoryMilkBottle, CategoryFruitCream}},
		{Name: "Milkshakes", Categories: []Category{CategoryMilkshakes, CategoryExoticMilkshakes, CategoryClassicShakes, CategoryFruitShakes}},
		{Name: "Cold Coffee", Categories: []Category{CategoryCoffee}},
		{Name: "Coolers", Categories: []Category{CategoryFloats, CategorySmoothies}},
	}
}

// Items returns the full menu in display order
func Items() []MenuItem {
	out := make([]MenuItem, len(menuItems))
	copy(out, menuItems)
	return out
}

// ItemByID looks up a menu item by its id
func ItemByID(id string) (MenuItem, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// ItemsByCategory returns all items in the given category, in display order
func ItemsByCategory(category Category) []MenuItem {
	var out []MenuItem
	for _, item := range menuItems {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Bestsellers returns the items flagged as bestsellers
func Bestsellers() []MenuItem {
	var out []MenuItem
	for _, item := range menuItems {
		if item.IsBestseller {
			out = append(out, item)
		}
	}
	return out
}
