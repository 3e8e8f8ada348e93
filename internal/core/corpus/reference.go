package corpus

import "github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"

// DefaultDocuments returns the built-in reference texts.
func DefaultDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:   "typography",
			Text: "The quick brown fox jumps over the lazy dog. This is a classic sentence used for typography samples.",
		},
		{
			ID:   "java",
			Text: "Java is a high-level, class-based, object-oriented programming language that is designed to have as few implementation dependencies as possible.",
		},
		{
			ID:   "machine-learning",
			Text: "Machine learning is a field of inquiry devoted to understanding and building methods that 'learn', that is, methods that leverage data to improve performance on some set of tasks.",
		},
		{
			ID:   "world-wide-web",
			Text: "The World Wide Web, commonly known as the Web, is an information system where documents and other web resources are identified by Uniform Resource Locators.",
		},
		{
			ID:   "data-structures",
			Text: "Data structures are a way of organizing and storing data in a computer so that it can be accessed and modified efficiently.",
		},
	}
}
