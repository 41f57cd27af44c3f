package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberSet(t *testing.T) {
	tests := []struct {
		name     string
		nums     []int
		expected bool
	}{
		{
			name:     "Valid set",
			nums:     []int{1, 5, 12, 20, 30, 37},
			expected: true,
		},
		{
			name:     "Too few numbers",
			nums:     []int{1, 5, 12, 20, 30},
			expected: false,
		},
		{
			name:     "Too many numbers",
			nums:     []int{1, 5, 12, 20, 30, 35, 37},
			expected: false,
		},
		{
			name:     "Duplicate number",
			nums:     []int{1, 5, 12, 20, 30, 30},
			expected: false,
		},
		{
			name:     "Number below range",
			nums:     []int{0, 5, 12, 20, 30, 37},
			expected: false,
		},
		{
			name:     "Number above range",
			nums:     []int{1, 5, 12, 20, 30, 38},
			expected: false,
		},
		{
			name:     "Boundary values allowed",
			nums:     []int{1, 2, 3, 35, 36, 37},
			expected: true,
		},
		{
			name:     "Empty set",
			nums:     []int{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberSet(tt.nums, 1, 37, 6))
		})
	}
}
