package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ItemSet is a set of item ids
type ItemSet = mapset.Set[string]

// NewItemSet creates an item set holding the given ids
func NewItemSet(ids ...string) ItemSet {
	set := mapset.New[string]()
	for _, id := range ids {
		set.Put(id)
	}
	return set
}

// SortedItems returns the ids in the set in lexical order
func SortedItems(set ItemSet) []string {
	ids := make([]string, 0, set.Size())
	set.Each(func(id string) {
		ids = append(ids, id)
	})
	sort.Strings(ids)
	return ids
}
