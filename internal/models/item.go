package models

// MenuItem is a dish offered by the storefront. Prices are whole yen.
type MenuItem struct {
	ID          string `json:"id"          yaml:"id"          validate:"required,max=32"   gorm:"primary_key;type:varchar(32)"`
	Name        string `json:"name"        yaml:"name"        validate:"required"`
	Price       int    `json:"price"       yaml:"price"       validate:"gt=0"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl"    yaml:"imageUrl"    validate:"omitempty,url"`
	Category    string `json:"category"    yaml:"category"    validate:"required"     gorm:"index"`
	Bestseller  bool   `json:"bestseller"  yaml:"bestseller"`

	// Position keeps the catalog order once items leave the seed file.
	Position int `json:"-" yaml:"-" gorm:"not null;default:0"`
}

func (MenuItem) TableName() string { return "menu_items" }

// AllCategories is the pseudo category that disables filtering.
const AllCategories = "All"

// Categories returns AllCategories followed by every distinct category in
// the order it first appears.
func Categories(items []MenuItem) []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

// FilterByCategory keeps the items of one category. An empty category or
// AllCategories returns the input unchanged.
func FilterByCategory(items []MenuItem, category string) []MenuItem {
	if category == "" || category == AllCategories {
		return items
	}
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}
