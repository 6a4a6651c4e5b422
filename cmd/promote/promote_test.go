package promote

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiff-cd/skiff/internal/app"
	"github.com/skiff-cd/skiff/services"
	"github.com/skiff-cd/skiff/testing/mocks"
)

func TestNewCmdPromote(t *testing.T) {
	buildID := "1234567890abcdef1234567890abcdef12345678"

	var promotedTarget string
	mockService := &mocks.MockPromotionManager{
		PromoteFunc: func(ctx context.Context, targetName string) (*services.Promotion, error) {
			promotedTarget = targetName
			return &services.Promotion{
				ID:         uuid.New(),
				TargetName: targetName,
				BuildID:    buildID,
				Status:     services.PromotionStatusCompleted,
			}, nil
		},
	}
	app.SetPromotionServiceForTesting(mockService)

	cmd := NewCmdPromote()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"blog"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "blog", promotedTarget)
	assert.Contains(t, stdout.String(), "Promoting staged build to 'blog'")
	assert.Contains(t, stdout.String(), buildID)
	assert.Contains(t, stdout.String(), "completed")
}

func TestNewCmdPromote_RequiresTarget(t *testing.T) {
	app.SetPromotionServiceForTesting(&mocks.MockPromotionManager{})

	cmd := NewCmdPromote()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.Error(t, err)
}
