package config

import (
	"errors"
	"fmt"

	"github.com/evdnx/stgcore/logger"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidConfig = errors.New("invalid strategy config")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that all numeric fields are within sensible bounds and
// returns the first problem found, so a bad configuration surfaces before
// any trading starts.
func (c *StrategyConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s must be %s %s (got %v)",
				ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.LotSize > 0 && c.LotSizeFactor == 0 {
		c.Log().Warn("lot_size_factor_zero",
			logger.Int64("id", c.ID), logger.Float64("lot_size", c.LotSize))
	}
	return nil
}
