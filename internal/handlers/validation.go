package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "hhmm" binding tag to gin's validator.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("handlers: unexpected binding engine")
			return
		}
		registerErr = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return domain.IsHHMM(fl.Field().String())
		})
	})
	return registerErr
}
