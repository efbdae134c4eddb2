package shopping

import (
	"sort"
	"strings"

	"github.com/dukerupert/togethertracker/internal/model"
)

const (
	CategoryProduce   = "produce"
	CategoryDairy     = "dairy"
	CategoryMeat      = "meat"
	CategoryBakery    = "bakery"
	CategoryPantry    = "pantry"
	CategoryFrozen    = "frozen"
	CategoryDrinks    = "drinks"
	CategorySnacks    = "snacks"
	CategoryHousehold = "household"
	CategoryCare      = "personal care"
	CategoryOther     = "other"
)

// Categorize picks a shopping category from the item name: exact match
// first, then the first keyword contained in the name. Unknown items are
// "other".
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return CategoryOther
	}
	if cat, ok := exact[name]; ok {
		return cat
	}
	for _, k := range keywords {
		if strings.Contains(name, k.word) {
			return k.category
		}
	}
	return CategoryOther
}

var exact = map[string]string{
	"milk":   CategoryDairy,
	"eggs":   CategoryDairy,
	"butter": CategoryDairy,
	"bread":  CategoryBakery,
	"rice":   CategoryPantry,
	"pasta":  CategoryPantry,
	"flour":  CategoryPantry,
	"sugar":  CategoryPantry,
	"chips":  CategorySnacks,
	"soap":   CategoryHousehold,
}

// keywords are checked in order, so longer phrases come before the words
// they contain ("ice cream" before "cream", "peanut butter" before "butter").
var keywords = []struct {
	word     string
	category string
}{
	{"ice cream", CategoryFrozen},
	{"frozen", CategoryFrozen},
	{"peanut butter", CategoryPantry},
	{"orange juice", CategoryDrinks},
	{"paper towel", CategoryHousehold},
	{"toilet paper", CategoryHousehold},
	{"dish soap", CategoryHousehold},
	{"trash bag", CategoryHousehold},
	{"detergent", CategoryHousehold},
	{"toothpaste", CategoryCare},
	{"shampoo", CategoryCare},
	{"deodorant", CategoryCare},
	{"sunscreen", CategoryCare},
	{"chicken", CategoryMeat},
	{"beef", CategoryMeat},
	{"pork", CategoryMeat},
	{"bacon", CategoryMeat},
	{"salmon", CategoryMeat},
	{"fish", CategoryMeat},
	{"cheese", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"cream", CategoryDairy},
	{"milk", CategoryDairy},
	{"bagel", CategoryBakery},
	{"muffin", CategoryBakery},
	{"tortilla", CategoryBakery},
	{"bread", CategoryBakery},
	{"cereal", CategoryPantry},
	{"beans", CategoryPantry},
	{"sauce", CategoryPantry},
	{"oil", CategoryPantry},
	{"juice", CategoryDrinks},
	{"coffee", CategoryDrinks},
	{"tea", CategoryDrinks},
	{"soda", CategoryDrinks},
	{"water", CategoryDrinks},
	{"cookie", CategorySnacks},
	{"cracker", CategorySnacks},
	{"popcorn", CategorySnacks},
	{"candy", CategorySnacks},
	{"chocolate", CategorySnacks},
	{"apple", CategoryProduce},
	{"banana", CategoryProduce},
	{"berries", CategoryProduce},
	{"grape", CategoryProduce},
	{"lettuce", CategoryProduce},
	{"spinach", CategoryProduce},
	{"tomato", CategoryProduce},
	{"potato", CategoryProduce},
	{"onion", CategoryProduce},
	{"carrot", CategoryProduce},
	{"avocado", CategoryProduce},
}

// Sort orders a list for display: open items before completed ones, urgent
// before regular among open items, otherwise insertion order.
func Sort(items []model.ShoppingItem) []model.ShoppingItem {
	out := append([]model.ShoppingItem(nil), items...)
	rank := func(it model.ShoppingItem) int {
		switch {
		case it.Completed:
			return 2
		case it.Urgent:
			return 0
		default:
			return 1
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i]) < rank(out[j])
	})
	return out
}
