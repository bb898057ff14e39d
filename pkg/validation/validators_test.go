package validation

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestValidPhone(t *testing.T) {
	v := newValidator()
	type payload struct {
		Phone string `validate:"valid_phone"`
	}

	assert.NoError(t, v.Struct(payload{Phone: "+4915123456789"}))
	assert.NoError(t, v.Struct(payload{Phone: "0301234567"}))
	assert.NoError(t, v.Struct(payload{Phone: ""})) // optional unless required

	assert.Error(t, v.Struct(payload{Phone: "123"}))
	assert.Error(t, v.Struct(payload{Phone: "call me"}))
	assert.Error(t, v.Struct(payload{Phone: "+49 151 2345"}))
}

func TestValidName(t *testing.T) {
	v := newValidator()
	type payload struct {
		Name string `validate:"valid_name"`
	}

	assert.NoError(t, v.Struct(payload{Name: "Anna O'Neil-Smith"}))
	assert.NoError(t, v.Struct(payload{Name: "Müller & Söhne GmbH"}))
	assert.Error(t, v.Struct(payload{Name: "drop<script>"}))
	assert.Error(t, v.Struct(payload{Name: "semi;colon"}))
}

func TestFutureDate(t *testing.T) {
	v := newValidator()
	type payload struct {
		Date string `validate:"future_date"`
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.NoError(t, v.Struct(payload{Date: tomorrow}))
	assert.NoError(t, v.Struct(payload{Date: ""}))
	assert.Error(t, v.Struct(payload{Date: yesterday}))
	assert.Error(t, v.Struct(payload{Date: "not-a-date"}))
	assert.Error(t, v.Struct(payload{Date: "01/02/2030"}))
}

func TestFormatFieldErrors(t *testing.T) {
	v := newValidator()
	type payload struct {
		Name  string `json:"name" validate:"required,min=2"`
		Email string `json:"email" validate:"required,email"`
	}

	t.Run("Should key errors by wire field name", func(t *testing.T) {
		err := v.Struct(payload{Name: "x", Email: "nope"})
		details := FormatFieldErrors(err)

		assert.Len(t, details, 2)
		fields := map[string]string{}
		for _, d := range details {
			fields[d.Field] = d.Message
		}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Equal(t, "Must be a valid email address", fields["email"])
		assert.Contains(t, fields["name"], "at least 2 characters")
	})

	t.Run("Should collapse non-validator errors to a generic detail", func(t *testing.T) {
		details := FormatFieldErrors(assert.AnError)
		assert.Len(t, details, 1)
		assert.Equal(t, "body", details[0].Field)
	})
}
