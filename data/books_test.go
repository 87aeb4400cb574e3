package data

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthor(t *testing.T, firstName, lastName string) Author {
	t.Helper()
	author, err := NewAuthor(firstName, lastName, "")
	require.NoError(t, err)
	return author
}

func testBook(t *testing.T) *Book {
	t.Helper()
	book, err := NewBook("9788497592208", "1984", 1949, CategoryNovel, []Author{testAuthor(t, "George", "Orwell")})
	require.NoError(t, err)
	return book
}

func TestNewBook(t *testing.T) {
	t.Run("valid book", func(t *testing.T) {
		book := testBook(t)
		assert.Equal(t, "9788497592208", book.ISBN())
		assert.Equal(t, "1984", book.Title())
		assert.Equal(t, 1949, book.Year())
		assert.Equal(t, CategoryNovel, book.Category())
		assert.Len(t, book.Authors(), 1)
		assert.Empty(t, book.Copies())
	})

	t.Run("isbn must be exactly 13 digits", func(t *testing.T) {
		authors := []Author{testAuthor(t, "George", "Orwell")}
		valid := []string{"9788497592208", " 9788497592208 ", "0000000000000"}
		for _, isbn := range valid {
			_, err := NewBook(isbn, "1984", 1949, CategoryNovel, authors)
			assert.NoError(t, err, "isbn %q", isbn)
		}
		invalid := []string{"", "978849759220", "97884975922081", "97884975922a8", "978-849759220", "978 849759220"}
		for _, isbn := range invalid {
			_, err := NewBook(isbn, "1984", 1949, CategoryNovel, authors)
			assert.ErrorIs(t, err, ErrFailedValidation, "isbn %q", isbn)
		}
	})

	t.Run("rejects bad fields", func(t *testing.T) {
		authors := []Author{testAuthor(t, "George", "Orwell")}
		tests := []struct {
			name     string
			title    string
			year     int
			category Category
			authors  []Author
		}{
			{"short title", "ab", 1949, CategoryNovel, authors},
			{"blank title", "   ", 1949, CategoryNovel, authors},
			{"zero year", "1984", 0, CategoryNovel, authors},
			{"negative year", "1984", -1, CategoryNovel, authors},
			{"missing category", "1984", 1949, "", authors},
			{"unknown category", "1984", 1949, "WESTERN", authors},
			{"no authors", "1984", 1949, CategoryNovel, nil},
			{"too many authors", "1984", 1949, CategoryNovel, []Author{
				testAuthor(t, "A", "One"), testAuthor(t, "B", "Two"),
				testAuthor(t, "C", "Three"), testAuthor(t, "D", "Four"),
			}},
			{"duplicate authors", "1984", 1949, CategoryNovel, []Author{
				testAuthor(t, "George", "Orwell"), testAuthor(t, "george", "ORWELL"),
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewBook("9788497592208", tt.title, tt.year, tt.category, tt.authors)
				assert.ErrorIs(t, err, ErrFailedValidation)
			})
		}
	})
}

func TestBookAuthors(t *testing.T) {
	t.Run("enforces the maximum of 3", func(t *testing.T) {
		book := testBook(t)
		require.NoError(t, book.AddAuthor(testAuthor(t, "Aldous", "Huxley")))
		require.NoError(t, book.AddAuthor(testAuthor(t, "Ray", "Bradbury")))
		err := book.AddAuthor(testAuthor(t, "Ursula", "Le Guin"))
		assert.ErrorIs(t, err, ErrFailedValidation)
	})

	t.Run("rejects duplicates by normalized name", func(t *testing.T) {
		book := testBook(t)
		err := book.AddAuthor(testAuthor(t, "GEORGE", "orwell"))
		assert.ErrorIs(t, err, ErrFailedValidation)
	})

	t.Run("remove is a no-op for absent authors", func(t *testing.T) {
		book := testBook(t)
		assert.False(t, book.RemoveAuthor(testAuthor(t, "Aldous", "Huxley")))
		assert.True(t, book.RemoveAuthor(testAuthor(t, "george", "ORWELL")))
		assert.Empty(t, book.Authors())
	})
}

func TestBookCopies(t *testing.T) {
	t.Run("attach and find by code ignoring case", func(t *testing.T) {
		book := testBook(t)
		copy, err := NewCopy("L-000001", book)
		require.NoError(t, err)
		require.NoError(t, book.AddCopy(copy))

		found, ok := book.FindCopyByCode("l-000001")
		require.True(t, ok)
		assert.Same(t, copy, found)

		_, ok = book.FindCopyByCode("L-999999")
		assert.False(t, ok)
	})

	t.Run("rejects a copy of another book", func(t *testing.T) {
		book := testBook(t)
		other, err := NewBook("9780000000002", "Animal Farm", 1945, CategoryNovel, []Author{testAuthor(t, "George", "Orwell")})
		require.NoError(t, err)
		copy, err := NewCopy("L-000001", other)
		require.NoError(t, err)
		assert.ErrorIs(t, book.AddCopy(copy), ErrFailedValidation)
	})

	t.Run("rejects duplicate codes within the book", func(t *testing.T) {
		book := testBook(t)
		first, err := NewCopy("L-000001", book)
		require.NoError(t, err)
		require.NoError(t, book.AddCopy(first))
		second, err := NewCopy("l-000001", book)
		require.NoError(t, err)
		assert.ErrorIs(t, book.AddCopy(second), ErrFailedValidation)
	})

	t.Run("enforces the maximum of 50", func(t *testing.T) {
		book := testBook(t)
		for i := 0; i < MaxCopiesPerBook; i++ {
			copy, err := NewCopy(fmt.Sprintf("C-%06d", i), book)
			require.NoError(t, err)
			require.NoError(t, book.AddCopy(copy))
		}
		extra, err := NewCopy("C-999999", book)
		require.NoError(t, err)
		assert.ErrorIs(t, book.AddCopy(extra), ErrFailedValidation)
	})

	t.Run("reports availability", func(t *testing.T) {
		book := testBook(t)
		assert.False(t, book.HasCopies())
		_, ok := book.AvailableCopy()
		assert.False(t, ok)

		copy, err := NewCopy("L-000001", book)
		require.NoError(t, err)
		require.NoError(t, book.AddCopy(copy))
		assert.True(t, book.HasCopies())
		assert.Equal(t, 1, book.AvailableCopies())
		available, ok := book.AvailableCopy()
		require.True(t, ok)
		assert.Same(t, copy, available)
	})
}

func TestBookMatches(t *testing.T) {
	book, err := NewBook("9780000000001", "El Árbol de la Ciencia", 1911, CategoryNovel, []Author{testAuthor(t, "Pío", "Baroja")})
	require.NoError(t, err)

	t.Run("title substring, case and diacritic insensitive", func(t *testing.T) {
		assert.True(t, book.Matches("arbol"))
		assert.True(t, book.Matches("ÁRBOL"))
		assert.True(t, book.Matches("ciencia"))
	})

	t.Run("author substring", func(t *testing.T) {
		assert.True(t, book.Matches("baroja"))
		assert.True(t, book.Matches("pio"))
	})

	t.Run("blank query never matches", func(t *testing.T) {
		assert.False(t, book.Matches(""))
		assert.False(t, book.Matches("   "))
	})

	t.Run("unrelated text does not match", func(t *testing.T) {
		assert.False(t, book.Matches("orwell"))
	})
}

func TestBookSetters(t *testing.T) {
	book := testBook(t)

	require.NoError(t, book.SetTitle("  Nineteen Eighty-Four  "))
	assert.Equal(t, "Nineteen Eighty-Four", book.Title())
	assert.ErrorIs(t, book.SetTitle("ab"), ErrFailedValidation)
	assert.Equal(t, "Nineteen Eighty-Four", book.Title())

	require.NoError(t, book.SetYear(1950))
	assert.ErrorIs(t, book.SetYear(0), ErrFailedValidation)
	assert.Equal(t, 1950, book.Year())

	require.NoError(t, book.SetCategory(CategoryEssay))
	assert.ErrorIs(t, book.SetCategory("WESTERN"), ErrFailedValidation)
	assert.Equal(t, CategoryEssay, book.Category())
}

func TestBookCompare(t *testing.T) {
	alpha, err := NewBook("9780000000001", "alpha", 2000, CategoryNovel, []Author{testAuthor(t, "A", "One")})
	require.NoError(t, err)
	alphaUpper, err := NewBook("9780000000002", "ALPHA", 2010, CategoryNovel, []Author{testAuthor(t, "A", "One")})
	require.NoError(t, err)
	beta, err := NewBook("9780000000003", "beta", 1990, CategoryNovel, []Author{testAuthor(t, "A", "One")})
	require.NoError(t, err)

	assert.Negative(t, alpha.Compare(beta))
	assert.Positive(t, beta.Compare(alpha))
	// Same title ignoring case: earlier year sorts first.
	assert.Negative(t, alpha.Compare(alphaUpper))
	assert.Zero(t, alpha.Compare(alpha))
}

func TestBookTitleHelpers(t *testing.T) {
	book, err := NewBook("9780000000001", "El Árbol de la Ciencia", 1911, CategoryNovel, []Author{testAuthor(t, "Pío", "Baroja")})
	require.NoError(t, err)

	assert.Equal(t, 5, book.TitleWordCount())
	assert.Equal(t, []string{"El", "Árbol", "de", "la", "Ciencia"}, book.TitleWords())
	assert.Equal(t, "EL ÁRBOL DE LA CIENCIA", book.UpperTitle())

	assert.True(t, book.ContainsTitleWord("arbol"))
	assert.False(t, book.ContainsTitleWord("arb"))
	assert.False(t, book.ContainsTitleWord(""))

	assert.True(t, book.TitleContains("ciencia"))
	assert.False(t, book.TitleContains("arbol")) // case-insensitive only, diacritics kept
	assert.False(t, book.TitleContains("  "))
}

func TestBookIsClassic(t *testing.T) {
	defer func() { timeNow = time.Now }()
	timeNow = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	old, err := NewBook("9780000000001", "1984", 1949, CategoryNovel, []Author{testAuthor(t, "George", "Orwell")})
	require.NoError(t, err)
	assert.True(t, old.IsClassic())

	boundary, err := NewBook("9780000000002", "Boundary", 1975, CategoryNovel, []Author{testAuthor(t, "A", "One")})
	require.NoError(t, err)
	assert.True(t, boundary.IsClassic())

	recent, err := NewBook("9780000000003", "Recent", 1976, CategoryNovel, []Author{testAuthor(t, "A", "One")})
	require.NoError(t, err)
	assert.False(t, recent.IsClassic())
}

func TestBookIdentityAndString(t *testing.T) {
	book := testBook(t)
	same, err := NewBook("9788497592208", "Different Title", 2000, CategoryEssay, []Author{testAuthor(t, "A", "One")})
	require.NoError(t, err)
	assert.True(t, book.Equals(same))
	assert.False(t, book.Equals(nil))

	assert.Equal(t, "9788497592208|1984|1949|NOVEL|[Orwell, George]", book.String())
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory(" novel ")
	require.NoError(t, err)
	assert.Equal(t, CategoryNovel, category)

	_, err = ParseCategory("western")
	assert.ErrorIs(t, err, ErrFailedValidation)
}
