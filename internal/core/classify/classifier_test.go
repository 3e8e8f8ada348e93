package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		percentage float64
		category   domain.Category
		message    string
	}{
		{100, domain.CategoryHigh, MessageHigh},
		{70.0, domain.CategoryHigh, MessageHigh},
		{69.999, domain.CategoryModerate, MessageModerate},
		{40.0, domain.CategoryModerate, MessageModerate},
		{39.9, domain.CategoryLow, MessageLow},
		{10.0, domain.CategoryLow, MessageLow},
		{9.99, domain.CategoryMinimal, MessageMinimal},
		{0.0, domain.CategoryMinimal, MessageMinimal},
	}

	for _, tc := range tests {
		v := Classify(tc.percentage)
		assert.Equal(t, tc.percentage, v.Percentage)
		assert.Equal(t, tc.category, v.Category, "percentage %v", tc.percentage)
		assert.Equal(t, tc.message, v.Message, "percentage %v", tc.percentage)
	}
}

func TestClassifyPartitionHasNoGaps(t *testing.T) {
	previous := severity(domain.CategoryMinimal)
	for p := 0.0; p <= 100.0; p += 0.01 {
		c := Category(p)
		order := severity(c)
		assert.GreaterOrEqual(t, order, previous, "category went down at %v", p)
		assert.NotEmpty(t, Message(c))
		previous = order
	}
}

// severity orders categories from minimal to high.
func severity(c domain.Category) int {
	switch c {
	case domain.CategoryHigh:
		return 3
	case domain.CategoryModerate:
		return 2
	case domain.CategoryLow:
		return 1
	default:
		return 0
	}
}
