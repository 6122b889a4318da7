// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package detect

import (
	"maps"
	"slices"

	"github.com/azure/stackscan/internal/rules"
)

// TechStack groups technologies by category. A technology belongs to the first category it was added under.
type TechStack struct {
	categories map[rules.Category]map[string]struct{}
	assigned   map[string]rules.Category
}

func NewTechStack() *TechStack {
	return &TechStack{
		categories: map[rules.Category]map[string]struct{}{},
		assigned:   map[string]rules.Category{},
	}
}

// Add records technology under category. It returns false when the technology is already recorded.
func (s *TechStack) Add(category rules.Category, technology string) bool {
	if _, has := s.assigned[technology]; has {
		return false
	}

	set, has := s.categories[category]
	if !has {
		set = map[string]struct{}{}
		s.categories[category] = set
	}

	set[technology] = struct{}{}
	s.assigned[technology] = category
	return true
}

// Merge adds the technologies of other, category by category in report order.
func (s *TechStack) Merge(other *TechStack) {
	if other == nil {
		return
	}

	for _, category := range rules.Categories {
		for _, technology := range other.List(category) {
			s.Add(category, technology)
		}
	}
}

// Category returns the category technology was recorded under.
func (s *TechStack) Category(technology string) (rules.Category, bool) {
	c, has := s.assigned[technology]
	return c, has
}

func (s *TechStack) Has(technology string) bool {
	_, has := s.assigned[technology]
	return has
}

// List returns the technologies of category, sorted.
func (s *TechStack) List(category rules.Category) []string {
	return slices.Sorted(maps.Keys(s.categories[category]))
}

func (s *TechStack) Len() int {
	return len(s.assigned)
}

// Sorted returns every category with its sorted technologies. Empty categories hold empty slices.
func (s *TechStack) Sorted() map[rules.Category][]string {
	res := make(map[rules.Category][]string, len(rules.Categories))
	for _, category := range rules.Categories {
		list := s.List(category)
		if list == nil {
			list = []string{}
		}
		res[category] = list
	}

	return res
}
