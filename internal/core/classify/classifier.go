// Package classify maps a similarity percentage to a risk category and message.
package classify

import (
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

// Lower bounds of each band, inclusive.
const (
	HighThreshold     = 70.0
	ModerateThreshold = 40.0
	LowThreshold      = 10.0
)

const (
	MessageHigh     = "A high degree of similarity was found. This text requires immediate and thorough review for plagiarism."
	MessageModerate = "Moderate similarity detected. It's recommended to review the text for improperly cited sources or significant overlap."
	MessageLow      = "Some similarities were found, but this may be due to common phrases or standard terminology. A quick review is advised."
	MessageMinimal  = "The text appears to be largely original with a very low-risk of plagiarism. No significant matches were found in the database."
)

// Category returns the band a percentage falls into.
func Category(percentage float64) domain.Category {
	switch {
	case percentage >= HighThreshold:
		return domain.CategoryHigh
	case percentage >= ModerateThreshold:
		return domain.CategoryModerate
	case percentage >= LowThreshold:
		return domain.CategoryLow
	default:
		return domain.CategoryMinimal
	}
}

// Message returns the human-readable text for a category.
func Message(category domain.Category) string {
	switch category {
	case domain.CategoryHigh:
		return MessageHigh
	case domain.CategoryModerate:
		return MessageModerate
	case domain.CategoryLow:
		return MessageLow
	default:
		return MessageMinimal
	}
}

// Classify builds the verdict for a percentage in [0,100].
func Classify(percentage float64) domain.Verdict {
	category := Category(percentage)
	return domain.Verdict{
		Percentage: percentage,
		Category:   category,
		Message:    Message(category),
	}
}
