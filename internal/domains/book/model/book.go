package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is where a reader is with a book. Values are the strings the tracker
// client sends and displays.
type Status string

const (
	StatusRead             Status = "Read"
	StatusReRead           Status = "Re-read"
	StatusDNF              Status = "DNF"
	StatusCurrentlyReading Status = "Currently reading"
	StatusReturnedUnread   Status = "Returned Unread"
	StatusWantToRead       Status = "Want to read"
)

var Statuses = []Status{
	StatusRead,
	StatusReRead,
	StatusDNF,
	StatusCurrentlyReading,
	StatusReturnedUnread,
	StatusWantToRead,
}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Format is the medium a book is read in.
type Format string

const (
	FormatPrint     Format = "Print"
	FormatPDF       Format = "PDF"
	FormatEbook     Format = "Ebook"
	FormatAudioBook Format = "AudioBook"
)

var Formats = []Format{FormatPrint, FormatPDF, FormatEbook, FormatAudioBook}

func (f Format) IsValid() bool {
	switch f {
	case FormatPrint, FormatPDF, FormatEbook, FormatAudioBook:
		return true
	}
	return false
}

func (f Format) String() string {
	return string(f)
}

// Book is one entry of the reading tracker.
type Book struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Author      string          `json:"author" db:"author"`
	PagesTotal  int             `json:"pagesTotal" db:"pages_total"`
	PagesRead   int             `json:"pagesRead" db:"pages_read"`
	Status      Status          `json:"status" db:"status"`
	Format      Format          `json:"format" db:"format"`
	Price       decimal.Decimal `json:"price" db:"price"`
	SuggestedBy string          `json:"suggestedBy" db:"suggested_by"`

	// Derived, never taken from input. Completion is not stored.
	Finished   bool `json:"finished" db:"finished"`
	Completion int  `json:"completion" db:"-"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Normalize trims free text and fills in the defaults for omitted fields.
func (b *Book) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.SuggestedBy = strings.TrimSpace(b.SuggestedBy)
	if b.Status == "" {
		b.Status = StatusWantToRead
	}
	if b.Format == "" {
		b.Format = FormatPrint
	}
}

// Stats summarises the whole shelf.
type Stats struct {
	TotalBooks     int `json:"totalBooks"`
	TotalBooksRead int `json:"totalBooksRead"`
	TotalPagesRead int `json:"totalPagesRead"`
}
