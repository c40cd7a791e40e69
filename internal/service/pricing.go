package service

import (
	"fmt"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type PricedOption struct {
	Option   entities.AdditionalOption
	Quantity int
}

// Price returns base price + configuration surcharge + sum of option price * quantity.
func Price(model entities.Model, conf entities.Configuration, options []PricedOption) (decimal.Decimal, error) {
	if conf.ModelID != model.ID {
		return decimal.Zero, fmt.Errorf("%w: configuration %d is for model %d, not %d",
			entities.ErrConfigurationMismatch, conf.ID, conf.ModelID, model.ID)
	}

	total := model.BasePrice.Add(conf.AdditionalPrice)
	for _, opt := range options {
		if opt.Quantity <= 0 || opt.Quantity > entities.MaxOptionQuantity {
			return decimal.Zero, fmt.Errorf("%w: option %d quantity %d",
				entities.ErrInvalidQuantity, opt.Option.ID, opt.Quantity)
		}
		total = total.Add(opt.Option.Price.Mul(decimal.NewFromInt(int64(opt.Quantity))))
	}
	if total.GreaterThan(entities.MaxOrderTotal) {
		return decimal.Zero, fmt.Errorf("%w: order total %s exceeds %s",
			entities.ErrInvalidQuantity, total, entities.MaxOrderTotal)
	}
	return total, nil
}
