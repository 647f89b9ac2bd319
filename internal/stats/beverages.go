package stats

// FallbackColor is used for beverage types the catalog doesn't know.
const FallbackColor = "#9ca3af"

type BeverageType struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	DefaultAmountMl int    `json:"default_amount_ml"`
}

var catalog = []BeverageType{
	{ID: "water", Name: "Water", Color: "#3b82f6", DefaultAmountMl: 250},
	{ID: "milk", Name: "Milk", Color: "#d1d5db", DefaultAmountMl: 200},
	{ID: "green-tea", Name: "Green Tea", Color: "#22c55e", DefaultAmountMl: 180},
	{ID: "coffee", Name: "Coffee", Color: "#92400e", DefaultAmountMl: 150},
}

// Catalog lists the known beverage types in display order.
func Catalog() []BeverageType {
	result := make([]BeverageType, len(catalog))
	copy(result, catalog)
	return result
}

// LookupBeverage never fails: unknown ids are displayed under their own id with the fallback color.
func LookupBeverage(id string) (BeverageType, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return BeverageType{ID: id, Name: id, Color: FallbackColor}, false
}
