package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/worktop/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found is a user error", types.ErrNotFound, exitUserError},
		{"wrapped validation error is a user error", fmt.Errorf("update: %w", types.ErrInvalidUrgency), exitUserError},
		{"backend failure is a system error", errors.New("open backend: disk full"), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
