package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCategoryValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		c := &Category{Name: "pets", IsActive: true}
		assert.NoError(t, c.Validate())
	})

	t.Run("BlankName", func(t *testing.T) {
		c := &Category{}
		err := c.Validate()
		require.Error(t, err)
		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{"this field cannot be blank"}, verrs["name"])
	})

	t.Run("NameTooLong", func(t *testing.T) {
		c := &Category{Name: strings.Repeat("x", CategoryNameMaxLen+1)}
		var verrs ValidationErrors
		require.ErrorAs(t, c.Validate(), &verrs)
		assert.Contains(t, verrs["name"][0], "at most 20 characters")
	})

	t.Run("LengthIsCountedInRunes", func(t *testing.T) {
		c := &Category{Name: strings.Repeat("я", CategoryNameMaxLen)}
		assert.NoError(t, c.Validate())
	})
}

func TestAdValidate(t *testing.T) {
	valid := func() *Ad {
		return &Ad{Name: "bike", Price: 100, CategoryID: 1}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("NegativePrice", func(t *testing.T) {
		ad := valid()
		ad.Price = -1
		var verrs ValidationErrors
		require.ErrorAs(t, ad.Validate(), &verrs)
		assert.Equal(t, []string{"ensure this value is greater than or equal to 0"}, verrs["price"])
	})

	t.Run("PriceAboveCap", func(t *testing.T) {
		ad := valid()
		ad.Price = AdPriceMax + 1
		var verrs ValidationErrors
		require.ErrorAs(t, ad.Validate(), &verrs)
		assert.Equal(t, []string{"ensure this value is less than or equal to 4294967295"}, verrs["price"])
	})

	t.Run("PriceAtCap", func(t *testing.T) {
		ad := valid()
		ad.Price = AdPriceMax
		assert.NoError(t, ad.Validate())
	})

	t.Run("MissingCategory", func(t *testing.T) {
		ad := valid()
		ad.CategoryID = 0
		var verrs ValidationErrors
		require.ErrorAs(t, ad.Validate(), &verrs)
		assert.Contains(t, verrs, "category")
	})

	t.Run("DescriptionTooLong", func(t *testing.T) {
		ad := valid()
		ad.Description = strp(strings.Repeat("d", AdDescriptionMaxLen+1))
		var verrs ValidationErrors
		require.ErrorAs(t, ad.Validate(), &verrs)
		assert.Contains(t, verrs, "description")
	})

	t.Run("MultipleFieldsReportedTogether", func(t *testing.T) {
		ad := &Ad{Name: "", Price: -5}
		var verrs ValidationErrors
		require.ErrorAs(t, ad.Validate(), &verrs)
		assert.Contains(t, verrs, "name")
		assert.Contains(t, verrs, "price")
		assert.Contains(t, verrs, "category")
	})
}

func TestAdUserValidate(t *testing.T) {
	valid := func() *AdUser {
		return &AdUser{FirstName: "Ivan", Username: "ivan_1", Password: "secret-pass", Role: RoleMember, Age: 30}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("UsernameNotASlug", func(t *testing.T) {
		u := valid()
		u.Username = "ivan petrov"
		var verrs ValidationErrors
		require.ErrorAs(t, u.Validate(), &verrs)
		assert.Contains(t, verrs["username"][0], "valid slug")
	})

	t.Run("BlankUsernameReportsBlankOnly", func(t *testing.T) {
		u := valid()
		u.Username = ""
		var verrs ValidationErrors
		require.ErrorAs(t, u.Validate(), &verrs)
		assert.Equal(t, []string{"this field cannot be blank"}, verrs["username"])
	})

	t.Run("InvalidRole", func(t *testing.T) {
		u := valid()
		u.Role = "superuser"
		var verrs ValidationErrors
		require.ErrorAs(t, u.Validate(), &verrs)
		assert.Equal(t, []string{"value is not a valid choice"}, verrs["role"])
	})

	t.Run("LastNameOptional", func(t *testing.T) {
		u := valid()
		u.LastName = nil
		assert.NoError(t, u.Validate())
	})
}

func TestValidationErrorsError(t *testing.T) {
	verrs := ValidationErrors{
		"name":  {"this field cannot be blank"},
		"price": {"ensure this value is greater than or equal to 0"},
	}
	assert.Equal(t, "validation failed: name, price", verrs.Error())
}
