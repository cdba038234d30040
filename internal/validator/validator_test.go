package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string   `json:"username" validate:"required,min=6,max=100"`
	Email    string   `json:"email" validate:"required,email"`
	Price    float64  `json:"price" validate:"gt=0"`
	Amount   *int     `json:"amount" validate:"omitempty,min=1"`
	Status   *string  `json:"status" validate:"omitempty,order_status"`
	Payment  string   `json:"payment_type" validate:"omitempty,payment_type"`
	Tags     []string `json:"tags" validate:"omitempty,min=1"`
}

func valid() sample {
	return sample{Username: "taro_user", Email: "taro@example.com", Price: 1}
}

func TestStruct_OK(t *testing.T) {
	s := valid()
	s.Payment = "credit card"
	assert.NoError(t, Struct(s))
}

func TestStruct_Messages(t *testing.T) {
	zero := 0
	bad := "lost"

	cases := []struct {
		name  string
		mod   func(s *sample)
		field string
		msg   string
	}{
		{"short username", func(s *sample) { s.Username = "abc" }, "username", "The username must be at least 6 characters long."},
		{"bad email", func(s *sample) { s.Email = "nope" }, "email", "A valid email address is required."},
		{"zero price", func(s *sample) { s.Price = 0 }, "price", "The price must be greater than 0."},
		{"zero amount", func(s *sample) { s.Amount = &zero }, "amount", "The amount must be at least 1."},
		{"status", func(s *sample) { s.Status = &bad }, "status", "The status must be one of: new, confirmed, preparing, sending, delivered."},
		{"payment", func(s *sample) { s.Payment = "bitcoin" }, "payment_type", "The payment_type must be one of: cash, credit card, debit."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mod(&s)

			err := Struct(s)
			require.Error(t, err)

			var ve *Error
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.msg, ve.Message)
		})
	}
}
