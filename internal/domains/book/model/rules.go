package model

import "math"

// DeriveFinished reports whether a book counts as finished.
func DeriveFinished(pagesRead, pagesTotal int) bool {
	return pagesRead >= pagesTotal
}

// CompletionPercentage is pagesRead/pagesTotal as a whole percentage,
// rounded half up. A book with no pages is 0% complete.
func CompletionPercentage(pagesRead, pagesTotal int) int {
	if pagesTotal == 0 {
		return 0
	}
	return int(math.Round(float64(pagesRead) / float64(pagesTotal) * 100))
}

// ValidateSubmission rejects progress past the last page.
func ValidateSubmission(pagesRead, pagesTotal int) error {
	if pagesRead > pagesTotal {
		return ErrInvalidPageRange
	}
	return nil
}

// FinishPolicy decides what happens to a book's status once it is finished.
type FinishPolicy struct {
	// AutoPromoteStatusOnFinish overwrites the status with Read when the
	// book is finished, whatever the reader submitted.
	AutoPromoteStatusOnFinish bool
}

// DefaultFinishPolicy promotes finished books to Read.
var DefaultFinishPolicy = FinishPolicy{AutoPromoteStatusOnFinish: true}

// Apply recomputes the derived fields of b. It must run on every write.
func (p FinishPolicy) Apply(b *Book) {
	b.Finished = DeriveFinished(b.PagesRead, b.PagesTotal)
	if b.Finished && p.AutoPromoteStatusOnFinish {
		b.Status = StatusRead
	}
	b.Completion = CompletionPercentage(b.PagesRead, b.PagesTotal)
}
