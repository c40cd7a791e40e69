package entities

import (
	"fmt"
	"slices"
)

type OrderStatus string

const (
	StatusNew              OrderStatus = "New"
	StatusConfirmed        OrderStatus = "Confirmed"
	StatusInProduction     OrderStatus = "InProduction"
	StatusReadyForDelivery OrderStatus = "ReadyForDelivery"
	StatusDelivered        OrderStatus = "Delivered"
	StatusCancelled        OrderStatus = "Cancelled"
)

// Граф переходов. Терминальные статусы (Delivered, Cancelled) переходов не имеют.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusNew:              {StatusConfirmed, StatusCancelled},
	StatusConfirmed:        {StatusInProduction, StatusCancelled},
	StatusInProduction:     {StatusReadyForDelivery, StatusCancelled},
	StatusReadyForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:        {},
	StatusCancelled:        {},
}

func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusNew,
		StatusConfirmed,
		StatusInProduction,
		StatusReadyForDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := orderTransitions[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return slices.Contains(orderTransitions[s], target)
}

// NextStatuses returns a copy of the statuses reachable from s.
func (s OrderStatus) NextStatuses() []OrderStatus {
	return slices.Clone(orderTransitions[s])
}

func (s OrderStatus) TransitionTo(target OrderStatus) error {
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s, allowed %v", ErrInvalidTransition, s, target, s.NextStatuses())
	}
	return nil
}
