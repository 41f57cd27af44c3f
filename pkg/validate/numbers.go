package validate

// NumberSet reports whether nums holds exactly size distinct integers,
// each within [min, max].
func NumberSet(nums []int, min, max, size int) bool {
	if len(nums) != size {
		return false
	}
	seen := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		if n < min || n > max {
			return false
		}
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}
