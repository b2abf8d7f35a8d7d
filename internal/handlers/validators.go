package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const cardNumberLength = 16

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator engine.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Decimal fields validate as numbers so gt/gte/required behave as expected.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		mustRegisterValidation(v, "cardnumber", validateCardNumber)
		mustRegisterValidation(v, "txkind", validateTxKind)
	})
}

// mustRegisterValidation panics on failure; a missing rule would silently accept bad input.
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validator: %v", tag, err))
	}
}

// validateCardNumber accepts 16-digit numbers in the issuer range starting with 4.
func validateCardNumber(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != cardNumberLength || s[0] != '4' {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateTxKind(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "withdraw", "topup":
		return true
	}
	return false
}
