package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/car-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, st := range entities.OrderStatuses() {
		got, err := entities.ParseOrderStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	for _, raw := range []string{"", "new", "Shipped", " Confirmed"} {
		_, err := entities.ParseOrderStatus(raw)
		assert.ErrorIs(t, err, entities.ErrInvalidStatus, raw)
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[entities.OrderStatus][]entities.OrderStatus{
		entities.StatusNew:              {entities.StatusConfirmed, entities.StatusCancelled},
		entities.StatusConfirmed:        {entities.StatusInProduction, entities.StatusCancelled},
		entities.StatusInProduction:     {entities.StatusReadyForDelivery, entities.StatusCancelled},
		entities.StatusReadyForDelivery: {entities.StatusDelivered, entities.StatusCancelled},
	}

	for _, from := range entities.OrderStatuses() {
		for _, to := range entities.OrderStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)

			err := from.TransitionTo(to)
			if want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, entities.ErrInvalidTransition)
			}
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	testCases := []struct {
		status   entities.OrderStatus
		terminal bool
	}{
		{entities.StatusNew, false},
		{entities.StatusConfirmed, false},
		{entities.StatusInProduction, false},
		{entities.StatusReadyForDelivery, false},
		{entities.StatusDelivered, true},
		{entities.StatusCancelled, true},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
			if tc.terminal {
				assert.Empty(t, tc.status.NextStatuses())
			}
		})
	}
}

func TestOrderStatus_NextStatusesIsCopy(t *testing.T) {
	next := entities.StatusNew.NextStatuses()
	require.NotEmpty(t, next)
	next[0] = entities.StatusDelivered

	assert.False(t, entities.StatusNew.CanTransitionTo(entities.StatusDelivered))
}

func TestOrderStatus_TransitionErrorListsAllowed(t *testing.T) {
	err := entities.StatusConfirmed.TransitionTo(entities.StatusDelivered)
	require.ErrorIs(t, err, entities.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "allowed [InProduction Cancelled]")

	err = entities.StatusDelivered.TransitionTo(entities.StatusCancelled)
	require.ErrorIs(t, err, entities.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "allowed []")
}

func TestNotFoundErrors(t *testing.T) {
	for _, err := range []error{
		entities.ErrUserNotFound,
		entities.ErrModelNotFound,
		entities.ErrConfigurationNotFound,
		entities.ErrCarNotFound,
		entities.ErrOrderNotFound,
	} {
		assert.ErrorIs(t, err, entities.ErrNotFound)
	}
	assert.NotErrorIs(t, entities.ErrCarNotAvailable, entities.ErrNotFound)
}

func TestParseCarStatus(t *testing.T) {
	st, err := entities.ParseCarStatus("Reserved")
	require.NoError(t, err)
	assert.Equal(t, entities.CarReserved, st)

	_, err = entities.ParseCarStatus("Stolen")
	assert.Error(t, err)
}
