package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mrops-br/product-catalog-api/internal/domain"
)

// BadRequestMessage is returned when no field specific message applies
const BadRequestMessage = "Bad Request"

var fieldMessages = map[string]string{
	"Category.notblank": "카테고리는 공백일 수 없습니다.",
	"Category.max":      "카테고리는 100자 이내로 작성해주세요.",
	"Name.notblank":     "상품 이름은 공백일 수 없습니다.",
	"Name.max":          "상품 이름은 100자 이내로 작성해주세요.",
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the struct tags of req and reports the first violation
// as a *domain.ValidationError
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			return &domain.ValidationError{Message: msg}
		}
	}
	return &domain.ValidationError{Message: BadRequestMessage}
}
