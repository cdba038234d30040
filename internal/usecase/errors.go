package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"shop/internal/domain/model"
	"shop/internal/validator"
)

const (
	MsgInvalidRequest = "The information received is invalid or necessary information is missing."
	MsgInvalidToken   = "Invalid token"
	MsgAdminRequired  = "Administrator permissions are required to perform this action."
	MsgForbidden      = "You do not have permission to access this resource."
	MsgServerError    = "A problem has occurred with the server."

	MsgUserNotFound    = "User not found."
	MsgProductNotFound = "Product not found."
	MsgImageNotFound   = "Image not found."
	MsgOrderNotFound   = "Order not found."
	MsgItemNotFound    = "Item not found."

	MsgTotalTooLarge = "The order total exceeds the allowed maximum."
)

// handlerでステータスとメッセージにする
// Errは500のときの原因（ログ用でレスポンスには出さない）
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func badRequest(msg string) error { return NewHTTPError(http.StatusBadRequest, msg) }
func notFound(msg string) error   { return NewHTTPError(http.StatusNotFound, msg) }
func conflict(msg string) error   { return NewHTTPError(http.StatusConflict, msg) }

// DBなどの失敗。中身はログにだけ出す
func internal(err error) error {
	return &HTTPError{Status: http.StatusInternalServerError, Message: MsgServerError, Err: err}
}

// validatorのエラーは400、それ以外は500
func invalidInput(err error) error {
	var ve *validator.Error
	if errors.As(err, &ve) {
		return badRequest(ve.Message)
	}
	return internal(err)
}

// 金額の上限超えは400
func totalError(err error) error {
	if errors.Is(err, model.ErrTotalTooLarge) {
		return badRequest(MsgTotalTooLarge)
	}
	return internal(err)
}

// 監査ログ用
func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
