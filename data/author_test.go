package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	t.Run("valid author trims its fields", func(t *testing.T) {
		author, err := NewAuthor(" George ", " Orwell ", " British ")
		require.NoError(t, err)
		assert.Equal(t, "George", author.FirstName())
		assert.Equal(t, "Orwell", author.LastName())
		assert.Equal(t, "British", author.Nationality())
	})

	t.Run("nationality is optional", func(t *testing.T) {
		author, err := NewAuthor("George", "Orwell", "")
		require.NoError(t, err)
		assert.Equal(t, "", author.Nationality())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := NewAuthor("  ", "Orwell", "")
		assert.ErrorIs(t, err, ErrFailedValidation)
		_, err = NewAuthor("George", "", "")
		assert.ErrorIs(t, err, ErrFailedValidation)
	})
}

func TestAuthorEquals(t *testing.T) {
	t.Run("names compare case and whitespace insensitively", func(t *testing.T) {
		a, err := NewAuthor("Jane  Doe", "Smith", "")
		require.NoError(t, err)
		b, err := NewAuthor("jane doe", "SMITH", "Irish")
		require.NoError(t, err)
		assert.True(t, a.Equals(b))
	})

	t.Run("different names differ", func(t *testing.T) {
		a, err := NewAuthor("Jane", "Smith", "")
		require.NoError(t, err)
		b, err := NewAuthor("John", "Smith", "")
		require.NoError(t, err)
		assert.False(t, a.Equals(b))
	})
}

func TestAuthorFormatting(t *testing.T) {
	author, err := NewAuthor("George", "Orwell", "British")
	require.NoError(t, err)
	assert.Equal(t, "Orwell, George", author.FullName())
	assert.Equal(t, "Orwell, George (British)", author.String())

	plain, err := NewAuthor("George", "Orwell", "")
	require.NoError(t, err)
	assert.Equal(t, "Orwell, George", plain.String())
}

func TestAuthorInitials(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"single surname", "George", "Orwell", "G. O."},
		{"compound surname", "Gabriel", "Garcia Marquez", "G. G.M."},
		{"lowercase input", "jane", "doe", "J. D."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, err := NewAuthor(tt.firstName, tt.lastName, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, author.Initials())
		})
	}
}
