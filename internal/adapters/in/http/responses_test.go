package http

import (
	"net/http"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "123"), http.StatusNotFound},
		{"unauthorized", errs.NewUnauthorizedError("not your order"), http.StatusForbidden},
		{"already assigned", errs.NewAlreadyAssignedError("123"), http.StatusConflict},
		{"invalid transition", errs.NewInvalidTransitionError("Pending", "Cooked", "Owner"), http.StatusConflict},
		{"email taken", commands.ErrEmailIsTaken, http.StatusConflict},
		{"value invalid", errs.NewValueIsInvalidError("total"), http.StatusUnprocessableEntity},
		{"value required", errs.NewValueIsRequiredError("items"), http.StatusUnprocessableEntity},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.err))
		})
	}
}
