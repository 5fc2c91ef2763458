package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyCategoryName     = errors.New("model: category name is required")
	ErrDuplicateCategoryName = errors.New("model: category name already exists")
	ErrUnknownCategory       = errors.New("model: unknown category")
)

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SeedCategories is the category set written on first run.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Work", Description: "Job and career tasks"},
		{ID: 2, Name: "Personal", Description: "Personal errands and goals"},
		{ID: 3, Name: "Shopping", Description: "Things to buy"},
		{ID: 4, Name: "Health", Description: "Exercise, appointments and wellbeing"},
		{ID: 5, Name: "Finance", Description: "Bills, budgets and paperwork"},
	}
}

// NextCategoryID returns max(id)+1, or 1 for an empty set.
func NextCategoryID(cats []Category) int {
	next := 1
	for _, c := range cats {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

// LookupCategory resolves a numeric id or a case-insensitive name.
func LookupCategory(cats []Category, token string) (Category, error) {
	token = strings.TrimSpace(token)
	if id, err := strconv.Atoi(token); err == nil {
		for _, c := range cats {
			if c.ID == id {
				return c, nil
			}
		}
		return Category{}, fmt.Errorf("%w: %d", ErrUnknownCategory, id)
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, token) {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, token)
}

// CategoryNames maps ids to names, keeping the numeric id for unknown ones.
func CategoryNames(cats []Category, ids []int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name := strconv.Itoa(id)
		for _, c := range cats {
			if c.ID == id {
				name = c.Name
				break
			}
		}
		out = append(out, name)
	}
	return out
}
