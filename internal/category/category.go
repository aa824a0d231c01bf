package category

import (
	"strings"

	"github.com/okottawar/Finsight/internal/model"
)

// Rule maps a category to the keywords that select it.
type Rule struct {
	Category model.Category
	Keywords []string
}

// DefaultRules returns the built-in keyword table, in match order.
func DefaultRules() []Rule {
	return []Rule{
		{Category: model.CategoryFood, Keywords: []string{"restaurant", "cafe", "coffee", "dining"}},
		{Category: model.CategoryTransport, Keywords: []string{"uber", "taxi", "fuel", "metro"}},
		{Category: model.CategoryEssentials, Keywords: []string{"grocery", "supermarket"}},
		{Category: model.CategoryUtilities, Keywords: []string{"electricity", "water", "internet"}},
		{Category: model.CategorySalary, Keywords: []string{"salary", "bonus", "freelance"}},
		{Category: model.CategoryHealth, Keywords: []string{"medical", "hospital", "clinic"}},
		{Category: model.CategoryEntertainment, Keywords: []string{"movie", "concert", "entertainment"}},
	}
}

// Categorizer assigns a category to a transaction remark by
// case-insensitive keyword matching against an ordered rule table.
type Categorizer struct {
	rules []Rule
}

// NewCategorizer creates a Categorizer over the given rule table.
func NewCategorizer(rules []Rule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Default returns a Categorizer using the built-in keyword table.
func Default() *Categorizer {
	return NewCategorizer(DefaultRules())
}

// Categorize returns the category of the first rule with a keyword
// appearing in remark, or CategoryOther when nothing matches.
func (c *Categorizer) Categorize(remark string) model.Category {
	lower := strings.ToLower(remark)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}
	return model.CategoryOther
}

// Rules returns the active rule table in match order.
func (c *Categorizer) Rules() []Rule {
	return c.rules
}
