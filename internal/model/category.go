package model

// Category labels a transaction by spending purpose.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEssentials    Category = "essentials"
	CategoryUtilities     Category = "utilities"
	CategorySalary        Category = "salary"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Categories returns every label in taxonomy order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryEssentials,
		CategoryUtilities,
		CategorySalary,
		CategoryHealth,
		CategoryEntertainment,
		CategoryOther,
	}
}

// ValidCategory reports whether c is one of the fixed labels.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
