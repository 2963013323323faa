package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator 註冊 hhmm 標籤，用於場館開放與關閉時間
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := model.ParseClock(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{validator: v}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
