package selectlist

// MapBy applies fn to every element and returns a list with the same
// shape. fn receives true only for the selected element. The order in
// which elements are visited is not part of the contract.
//
// MapBy is a package function rather than a method because the element
// type of the result differs from the input's.
func MapBy[T, U any](fn func(selected bool, elem T) U, list SelectList[T]) SelectList[U] {
	out := SelectList[U]{
		before:   make([]U, len(list.before)),
		selected: fn(true, list.selected),
		after:    make([]U, len(list.after)),
	}
	for i, e := range list.before {
		out.before[i] = fn(false, e)
	}
	for i, e := range list.after {
		out.after[i] = fn(false, e)
	}
	return out
}

// Map applies fn uniformly to every element, keeping the same selection.
func Map[T, U any](fn func(T) U, list SelectList[T]) SelectList[U] {
	return MapBy(func(_ bool, e T) U { return fn(e) }, list)
}
