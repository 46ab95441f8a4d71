package book

// MinRating and MaxRating bound the valid rating scale.
const (
	MinRating = 1
	MaxRating = 5
)

// DefaultOverallRating is reported for a book with no valid ratings.
// The floor of the scale, not zero: an unrated book is never "rating 0".
const DefaultOverallRating = MinRating

// OverallRating computes the aggregate rating of a ratings sequence.
//
// Entries outside [MinRating, MaxRating] are discarded first. The result is
// the arithmetic mean of the remainder truncated toward zero, or
// [DefaultOverallRating] when nothing valid remains.
func OverallRating(ratings []int) int {
	sum, count := 0, 0
	for _, r := range ratings {
		if r < MinRating || r > MaxRating {
			continue
		}
		sum += r
		count++
	}

	if count == 0 {
		return DefaultOverallRating
	}
	return sum / count
}
