package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "")
	f.Set("last_name", "Doe")

	assert.False(t, f.Validate())
	assert.Equal(t, "First name is required", f.Error("first_name"))
	assert.Empty(t, f.Error("last_name"))
}

func TestValidateWhitespaceOnlyIsRequired(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "   ")
	f.Set("last_name", "Doe")

	assert.False(t, f.Validate())
	assert.Equal(t, "First name is required", f.Error("first_name"))
}

func TestValidateMinLength(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "J")
	f.Set("last_name", "Doe")

	assert.False(t, f.Validate())
	assert.Equal(t, "First name must be at least 2 characters", f.Error("first_name"))
}

func TestSubmitTrimsValues(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "  Jo  ")
	f.Set("last_name", "  Doe ")

	var got map[string]string
	ran, err := f.Submit(func(values map[string]string) error {
		got = values
		return nil
	})

	assert.True(t, ran)
	assert.NoError(t, err)
	assert.Equal(t, "Jo", got["first_name"])
	assert.Equal(t, "Doe", got["last_name"])
}

func TestSubmitBlockedWhenInvalid(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "J")
	f.Set("last_name", "Doe")

	ran, _ := f.Submit(func(map[string]string) error {
		t.Fatal("submit callback should not run")
		return nil
	})

	assert.False(t, ran)
	assert.Equal(t, "First name must be at least 2 characters", f.Error("first_name"))
}

func TestSubmitBlockedWhileLoading(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "Jane")
	f.Set("last_name", "Doe")
	f.SetLoading(true)

	ran, _ := f.Submit(func(map[string]string) error { return nil })
	assert.False(t, ran)
}

func TestSubmitReturnsCallbackError(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "Jane")
	f.Set("last_name", "Doe")

	want := errors.New("server rejected")
	ran, err := f.Submit(func(map[string]string) error { return want })

	assert.True(t, ran)
	assert.Equal(t, want, err)
	assert.False(t, f.Loading())
}

func TestSetClearsFieldError(t *testing.T) {
	f := AuthorForm()
	f.Set("first_name", "")
	f.Set("last_name", "Doe")
	assert.False(t, f.Validate())
	assert.NotEmpty(t, f.Error("first_name"))

	f.Set("first_name", "Jane")
	assert.Empty(t, f.Error("first_name"))
}

func TestArticleFormRules(t *testing.T) {
	f := ArticleForm()
	f.Set("title", "Hey")
	f.Set("content", "short")

	assert.False(t, f.Validate())
	assert.Equal(t, "Title must be at least 5 characters", f.Error("title"))
	assert.Equal(t, "Content must be at least 10 characters", f.Error("content"))
}
