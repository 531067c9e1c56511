package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book/model"
)

const sampleImport = `
books:
  - title: Dune
    author: Frank Herbert
    pagesTotal: 412
    pagesRead: 100
    format: Print
    price: 9.99
  - title: Emma
    author: Jane Austen
    pagesTotal: 474
    suggestedBy: Ana
`

func TestParseImport(t *testing.T) {
	reqs, err := parseImport(strings.NewReader(sampleImport))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	dune := reqs[0]
	assert.Equal(t, "Dune", dune.Title)
	require.NotNil(t, dune.PagesTotal)
	assert.Equal(t, 412, *dune.PagesTotal)
	assert.Equal(t, 100, dune.PagesRead)
	assert.Equal(t, model.FormatPrint, dune.Format)
	require.NotNil(t, dune.Price)
	assert.Equal(t, "9.99", dune.Price.String())

	emma := reqs[1]
	assert.Nil(t, emma.Price)
	assert.Equal(t, "Ana", emma.SuggestedBy)
	assert.Empty(t, emma.Status)
}

func TestParseImportRejectsInvalidBook(t *testing.T) {
	_, err := parseImport(strings.NewReader(`
books:
  - title: Dune
    author: Frank Herbert
    pagesTotal: 10
    pagesRead: 20
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidPageRange)
	assert.Contains(t, err.Error(), `book 1 ("Dune")`)
}

func TestParseImportRejectsUnknownFields(t *testing.T) {
	_, err := parseImport(strings.NewReader(`
books:
  - title: Dune
    author: Frank Herbert
    pagesTotal: 10
    rating: 5
`))
	assert.Error(t, err)
}

func TestParseImportEmpty(t *testing.T) {
	_, err := parseImport(strings.NewReader(""))
	assert.EqualError(t, err, "import file is empty")

	_, err = parseImport(strings.NewReader("books: []\n"))
	assert.EqualError(t, err, "import file has no books")
}

func TestImportDryRunDoesNotTouchDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleImport), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--database-url", "postgres://invalid:1/none", "import", "--dry-run", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "2 books are valid; nothing written.")
}

func TestRootCommandTree(t *testing.T) {
	cmd := newRootCmd()

	for _, path := range [][]string{{"migrate"}, {"seed"}, {"import"}, {"user", "create"}} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], found.Name())
	}

	create, _, err := cmd.Find([]string{"user", "create"})
	require.NoError(t, err)
	assert.NotNil(t, create.Flags().Lookup("username"))
	assert.NotNil(t, create.Flags().Lookup("email"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("database-url"))
}
