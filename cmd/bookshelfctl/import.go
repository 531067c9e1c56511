package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/domains/book/model"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
)

// importFile is the YAML layout accepted by `bookshelfctl import`:
//
//	books:
//	  - title: Dune
//	    author: Frank Herbert
//	    pagesTotal: 412
//	    pagesRead: 412
//	    format: Print
//	    price: 9.99
type importFile struct {
	Books []importBook `yaml:"books"`
}

type importBook struct {
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	PagesTotal  *int     `yaml:"pagesTotal"`
	PagesRead   int      `yaml:"pagesRead"`
	Status      string   `yaml:"status"`
	Format      string   `yaml:"format"`
	Price       *float64 `yaml:"price"`
	SuggestedBy string   `yaml:"suggestedBy"`
}

func (b importBook) request() model.BookRequest {
	req := model.BookRequest{
		Title:       b.Title,
		Author:      b.Author,
		PagesTotal:  b.PagesTotal,
		PagesRead:   b.PagesRead,
		Status:      model.Status(b.Status),
		Format:      model.Format(b.Format),
		SuggestedBy: b.SuggestedBy,
	}
	if b.Price != nil {
		p := decimal.NewFromFloat(*b.Price)
		req.Price = &p
	}
	return req
}

// parseImport decodes r and validates every entry, so that a bad file is
// rejected before anything is written.
func parseImport(r io.Reader) ([]model.BookRequest, error) {
	var f importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("import file is empty")
		}
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	if len(f.Books) == 0 {
		return nil, fmt.Errorf("import file has no books")
	}

	reqs := make([]model.BookRequest, 0, len(f.Books))
	for i, b := range f.Books {
		req := b.request()
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("book %d (%q): %w", i+1, b.Title, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add tracker books from a YAML file in a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			reqs, err := parseImport(f)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d books are valid; nothing written.\n", len(reqs))
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := opts.timeoutContext()
			defer cancel()

			db, err := opts.openPool(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := bookService.NewService(bookRepo.NewPostgresRepository(db.Pool), model.FinishPolicy{
				AutoPromoteStatusOnFinish: cfg.Books.AutoPromoteStatusOnFinish,
			})
			books, err := svc.ImportBooks(ctx, reqs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range books {
				fmt.Fprintf(out, "%s  %s (%d%%)\n", b.ID, b.Title, b.Completion)
			}
			fmt.Fprintf(out, "Imported %d books.\n", len(books))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	return cmd
}
