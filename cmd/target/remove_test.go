package target

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/services"
	"github.com/skiff-cd/skiff/testing/mocks"
)

func TestNewCmdTargetRemove(t *testing.T) {
	target := &services.Target{
		ID:   uuid.New(),
		Name: "blog",
		Role: services.TargetRoleProduction,
	}

	var removedID uuid.UUID
	mockService := &mocks.MockTargetManager{
		GetByNameFunc: func(name string) (*services.Target, error) {
			return target, nil
		},
		RemoveFunc: func(id uuid.UUID) error {
			removedID = id
			return nil
		},
	}
	app.SetTargetServiceForTesting(mockService)

	cmd := NewCmdTargetRemove()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"blog"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, target.ID, removedID)
	assert.Contains(t, stdout.String(), "Target 'blog' removed")
}

func TestNewCmdTargetRemove_NotFound(t *testing.T) {
	mockService := &mocks.MockTargetManager{
		GetByNameFunc: func(name string) (*services.Target, error) {
			return nil, services.ErrTargetNotFound
		},
	}
	app.SetTargetServiceForTesting(mockService)

	cmd := NewCmdTargetRemove()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"nope"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, services.ErrTargetNotFound)
}
