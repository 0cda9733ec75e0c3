package service

const (
	// DefaultLimit is the page size when the caller does not supply one.
	DefaultLimit = 10
	// MaxLimit caps caller-supplied page sizes.
	MaxLimit = 100
)

// clampPage normalizes caller-supplied pagination parameters.
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
