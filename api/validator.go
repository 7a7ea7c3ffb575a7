package api

import (
	"github.com/cleancycle/cleancycle/util"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators wires the domain validators into gin's binding
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("wastetype", validWasteType)
	}
}

var validWasteType validator.Func = func(fl validator.FieldLevel) bool {
	if wasteType, ok := fl.Field().Interface().(string); ok {
		return util.IsSupportedWasteType(wasteType)
	}
	return false
}
