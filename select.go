package selectlist

import "slices"

// Select moves the selection to the first element satisfying pred and
// returns the resulting list. The currently selected element is tested
// first: if it matches, the list is returned unchanged even when earlier
// elements also match. Otherwise the before segment is scanned left to
// right, then the after segment, and the first match becomes the new
// selection with the remaining elements redistributed around it in their
// original order. If nothing matches, the list is returned unchanged.
//
// Note the priority rule: "first match in left-to-right order" is only
// true when the selected element itself does not match. A matching
// selection always wins, even over matches in before.
func (l SelectList[T]) Select(pred func(T) bool) SelectList[T] {
	if pred(l.selected) {
		return l
	}
	if i := slices.IndexFunc(l.before, pred); i >= 0 {
		rest := make([]T, 0, len(l.before)-i-1+1+len(l.after))
		rest = append(rest, l.before[i+1:]...)
		rest = append(rest, l.selected)
		rest = append(rest, l.after...)
		return SelectList[T]{
			before:   cloneSeg(l.before[:i]),
			selected: l.before[i],
			after:    rest,
		}
	}
	if i := slices.IndexFunc(l.after, pred); i >= 0 {
		lead := make([]T, 0, len(l.before)+1+i)
		lead = append(lead, l.before...)
		lead = append(lead, l.selected)
		lead = append(lead, l.after[:i]...)
		return SelectList[T]{
			before:   lead,
			selected: l.after[i],
			after:    cloneSeg(l.after[i+1:]),
		}
	}
	return l
}
