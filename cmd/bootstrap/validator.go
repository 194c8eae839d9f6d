package bootstrap

import (
	"errors"

	"paintball-booking/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var ValidatorModule = fx.Module("validator",
	fx.Invoke(RegisterValidators),
)

// RegisterValidators adds the custom tags to gin's binding engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return validation.Register(v)
}
