package target

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/services"
	"github.com/skiff-cd/skiff/testing/mocks"
)

func TestNewCmdTargetAdd(t *testing.T) {
	var created *services.Target
	mockService := &mocks.MockTargetManager{
		CreateFunc: func(target *services.Target) (*services.Target, error) {
			created = target
			return target, nil
		},
	}
	app.SetTargetServiceForTesting(mockService)

	cmd := NewCmdTargetAdd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--name", "blog", "--role", "production", "--token", "secret"})

	require.NoError(t, cmd.Execute())

	require.NotNil(t, created)
	assert.Equal(t, "blog", created.Name)
	assert.Equal(t, services.TargetRoleProduction, created.Role)
	assert.Equal(t, "secret", created.AuthToken)

	assert.Contains(t, stdout.String(), "blog")
	assert.Contains(t, stdout.String(), "production")
	// Token value never echoed back
	assert.NotContains(t, stdout.String(), "secret")
}

func TestNewCmdTargetAdd_RequiredFlags(t *testing.T) {
	app.SetTargetServiceForTesting(&mocks.MockTargetManager{})

	cmd := NewCmdTargetAdd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--name", "blog"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}
