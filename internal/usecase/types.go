package usecase

// ListQuery carries an optional store predicate passthrough plus
// zero-based pagination. Position/Size follow an exact-count contract:
// skip Position items, return at most Size.
type ListQuery struct {
	QueryType string
	Query     string
	Position  int
	Size      int
}

const DefaultListSize = 50

func paginate[T any](items []T, position, size int) []T {
	if position < 0 {
		position = 0
	}
	if size <= 0 {
		size = DefaultListSize
	}
	if position >= len(items) {
		return []T{}
	}
	end := position + size
	if end > len(items) {
		end = len(items)
	}
	return items[position:end]
}
