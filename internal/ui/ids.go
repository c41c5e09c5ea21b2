package ui

import "strconv"

// AssignIDs gives every element in the tree without an id a sequential one
// ("<prefix>0", "<prefix>1", ...) in walk order. Explicit ids are kept, and
// calling it again on the same tree changes nothing.
func AssignIDs(root *Element, prefix string) {
	used := make(map[string]bool)
	root.Walk(func(el *Element) bool {
		if el.id != "" {
			used[el.id] = true
		}
		return true
	})

	n := 0
	root.Walk(func(el *Element) bool {
		if el.id != "" {
			return true
		}
		for {
			id := prefix + strconv.Itoa(n)
			n++
			if !used[id] {
				el.id = id
				used[id] = true
				break
			}
		}
		return true
	})
}
