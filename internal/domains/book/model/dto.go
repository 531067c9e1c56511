package model

import (
	"errors"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Column limits: pages are INTEGER and price is NUMERIC(10,2).
const maxPages = math.MaxInt32

var maxPrice = decimal.New(1, 8)

// BookRequest is the body of POST /api/books and PUT /api/books/:id.
// A finished flag in the body is ignored.
type BookRequest struct {
	Title       string           `json:"title"`
	Author      string           `json:"author"`
	PagesTotal  *int             `json:"pagesTotal"`
	PagesRead   int              `json:"pagesRead"`
	Status      Status           `json:"status"`
	Format      Format           `json:"format"`
	Price       *decimal.Decimal `json:"price"`
	SuggestedBy string           `json:"suggestedBy"`
}

func (r BookRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.PagesTotal,
			validation.NotNil.Error("pagesTotal is required"),
			validation.By(func(interface{}) error {
				if r.PagesTotal == nil {
					return nil
				}
				if *r.PagesTotal < 1 {
					return errors.New("pagesTotal must be at least 1")
				}
				if *r.PagesTotal > maxPages {
					return errors.New("pagesTotal is too large")
				}
				return nil
			}),
		),
		validation.Field(&r.PagesRead,
			validation.Min(0).Error("pagesRead cannot be negative"),
			validation.Max(maxPages).Error("pagesRead is too large"),
		),
		validation.Field(&r.Status,
			validation.By(func(interface{}) error {
				if r.Status != "" && !r.Status.IsValid() {
					return errors.New("unknown status")
				}
				return nil
			}),
		),
		validation.Field(&r.Format,
			validation.By(func(interface{}) error {
				if r.Format != "" && !r.Format.IsValid() {
					return errors.New("unknown format")
				}
				return nil
			}),
		),
		validation.Field(&r.Price,
			validation.By(func(interface{}) error {
				if r.Price == nil {
					return nil
				}
				switch {
				case r.Price.IsNegative():
					return errors.New("price cannot be negative")
				case r.Price.GreaterThanOrEqual(maxPrice):
					return errors.New("price must be less than 100000000")
				case !r.Price.Equal(r.Price.Truncate(2)):
					return errors.New("price cannot have more than two decimal places")
				}
				return nil
			}),
		),
		validation.Field(&r.SuggestedBy, validation.Length(0, 255)),
	)
	if err != nil {
		return err
	}

	return ValidateSubmission(r.PagesRead, *r.PagesTotal)
}

// ToBook builds a normalized book from a validated request. Derived fields
// are left for the FinishPolicy.
func (r BookRequest) ToBook() *Book {
	b := &Book{
		Title:       r.Title,
		Author:      r.Author,
		PagesRead:   r.PagesRead,
		Status:      r.Status,
		Format:      r.Format,
		Price:       decimal.Zero,
		SuggestedBy: r.SuggestedBy,
	}
	if r.PagesTotal != nil {
		b.PagesTotal = *r.PagesTotal
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	b.Normalize()
	return b
}
