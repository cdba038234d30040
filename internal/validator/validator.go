package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"shop/internal/domain/model"

	"github.com/go-playground/validator/v10"
)

// 入力チェックのエラー（400で返す）
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		//エラーのフィールド名はjsonタグの名前
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
			return model.OrderStatus(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("payment_type", func(fl validator.FieldLevel) bool {
			return model.PaymentType(fl.Field().String()).IsValid()
		})

		validate = v
	})
	return validate
}

// 構造体のvalidateタグを検証して、最初の違反を読みやすいメッセージにする
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &Error{Message: err.Error()}
	}
	fe := verrs[0]
	return &Error{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s is required.", field)
	case "email":
		return "A valid email address is required."
	case "min":
		if isText {
			return fmt.Sprintf("The %s must be at least %s characters long.", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("At least %s %s must be provided.", fe.Param(), field)
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("The %s must be at most %s characters long.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at most %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "order_status":
		return "The status must be one of: new, confirmed, preparing, sending, delivered."
	case "payment_type":
		return "The payment_type must be one of: cash, credit card, debit."
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
