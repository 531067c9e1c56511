package web

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"login.html", "register.html", "books.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestBooksTemplateRendersRows(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	type row struct {
		Name, Author, Category string
		Published              time.Time
	}
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "books.html", map[string]interface{}{
		"user":  struct{ Username string }{"alice"},
		"books": []row{{"Dune", "Frank Herbert", "Science Fiction", time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Welcome, alice")
	assert.Contains(t, buf.String(), "1965-08-01")
}

func TestStaticServesTrackerClient(t *testing.T) {
	f, err := Static().Open("index.html")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Reading Tracker")
}
