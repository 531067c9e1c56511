package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCatalogBook = errors.New("catalog book needs name, author, category and published date")

// CatalogBook is an entry of the demo catalog shown to signed-in users.
type CatalogBook struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Author    string    `json:"author" db:"author"`
	Category  string    `json:"category" db:"category"`
	Published time.Time `json:"published" db:"published"`
}

func (b CatalogBook) Validate() error {
	if b.Name == "" || b.Author == "" || b.Category == "" || b.Published.IsZero() {
		return ErrInvalidCatalogBook
	}
	return nil
}
