package tracker

import (
	"strings"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/shopping"
)

type NewShoppingItem struct {
	Name     string
	Quantity int
	Unit     string
	Urgent   bool
	Notes    string
}

// AddShoppingItem adds an item to the household list, categorized by name.
func (a *App) AddShoppingItem(in NewShoppingItem) (model.ShoppingItem, error) {
	if err := a.requireHousehold(); err != nil {
		return model.ShoppingItem{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.ShoppingItem{}, missing("name")
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	item := model.ShoppingItem{
		ID:          a.newID(),
		HouseholdID: a.household.ID,
		Name:        name,
		Category:    shopping.Categorize(name),
		Quantity:    in.Quantity,
		Unit:        strings.TrimSpace(in.Unit),
		AddedBy:     a.currentID,
		Urgent:      in.Urgent,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   a.now(),
	}
	a.shoppingList = append(a.shoppingList, item)
	a.saveShopping()
	return item, nil
}

// ToggleShoppingItem flips the item between bought and still needed.
func (a *App) ToggleShoppingItem(id string) (model.ShoppingItem, error) {
	return a.updateShoppingItem(id, func(it *model.ShoppingItem) {
		it.Completed = !it.Completed
	})
}

func (a *App) MarkUrgent(id string, urgent bool) (model.ShoppingItem, error) {
	return a.updateShoppingItem(id, func(it *model.ShoppingItem) {
		it.Urgent = urgent
	})
}

func (a *App) updateShoppingItem(id string, fn func(*model.ShoppingItem)) (model.ShoppingItem, error) {
	if err := a.requireHousehold(); err != nil {
		return model.ShoppingItem{}, err
	}
	i := a.shoppingIndex(id)
	if i < 0 {
		return model.ShoppingItem{}, ErrItemNotFound
	}
	fn(&a.shoppingList[i])
	a.saveShopping()
	return a.shoppingList[i], nil
}

func (a *App) RemoveShoppingItem(id string) error {
	if err := a.requireHousehold(); err != nil {
		return err
	}
	i := a.shoppingIndex(id)
	if i < 0 {
		return ErrItemNotFound
	}
	a.shoppingList = append(a.shoppingList[:i], a.shoppingList[i+1:]...)
	a.saveShopping()
	return nil
}

// ShoppingItems returns the list with urgent open items first, then other
// open items, then bought ones.
func (a *App) ShoppingItems() []model.ShoppingItem {
	return shopping.Sort(a.shoppingList)
}

func (a *App) shoppingIndex(id string) int {
	for i := range a.shoppingList {
		if a.shoppingList[i].ID == id {
			return i
		}
	}
	return -1
}
