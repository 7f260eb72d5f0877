// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// stockSymbolRegex matches ticker symbols: 1-10 letters, optionally with a
// dot-separated class suffix (e.g. BRK.B).
var stockSymbolRegex = regexp.MustCompile(`^[A-Za-z]{1,10}(\.[A-Za-z]{1,4})?$`)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,30}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("stock_symbol", validateStockSymbol)
		_ = v.RegisterValidation("username", validateUsername)
	}
}

func validateStockSymbol(fl validator.FieldLevel) bool {
	return stockSymbolRegex.MatchString(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}
