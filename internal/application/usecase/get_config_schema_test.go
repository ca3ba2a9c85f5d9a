package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panedrawer/internal/application/port/mocks"
	"github.com/bnema/panedrawer/internal/application/usecase"
	"github.com/bnema/panedrawer/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "drawer.gravity_magnitude",
			Type:        "float64",
			Default:     "2",
			Description: "Pull toward the target position",
			Range:       ">0",
			Section:     "Physics",
		},
		{
			Key:         "drawer.edge_threshold",
			Type:        "float64",
			Default:     "20",
			Description: "Width of the edge band",
			Section:     "Gesture",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 3)
		assert.Equal(t, "drawer.gravity_magnitude", result.Keys[0].Key)
		assert.Equal(t, "logging.level", result.Keys[2].Key)
		assert.Equal(t, []string{"Physics", "Gesture", "Logging"}, result.Sections)
	})

	t.Run("filters by section ignoring case", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, []string{"trace", "debug", "info", "warn", "error"}, result.Keys[0].Values)
		assert.Len(t, result.Sections, 3)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result.Keys)
		assert.Empty(t, result.Sections)
	})
}
