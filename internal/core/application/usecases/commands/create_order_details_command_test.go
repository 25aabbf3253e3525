package commands_test

import (
	"testing"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderDetailsCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	parts := []commands.TranslationOperationPart{
		{ID: kernel.NewUUID(), CharCount: 40, CharCountWithSpaces: 45},
		{ID: kernel.NewUUID(), CharCount: 50, CharCountWithSpaces: 55},
	}

	cmd, err := commands.NewCreateOrderDetailsCommand(orderID, parts)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Len(t, cmd.Operations(), 2)
}

func TestNewCreateOrderDetailsCommand_NoOperations(t *testing.T) {
	_, err := commands.NewCreateOrderDetailsCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOperationsAreRequired)
}

func TestNewCreateOrderDetailsCommand_InvalidOperationID(t *testing.T) {
	parts := []commands.TranslationOperationPart{
		{ID: kernel.UUID{}, CharCount: 40, CharCountWithSpaces: 45},
	}

	_, err := commands.NewCreateOrderDetailsCommand(kernel.NewUUID(), parts)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderDetailsCommand_InvalidCharCount(t *testing.T) {
	parts := []commands.TranslationOperationPart{
		{ID: kernel.NewUUID(), CharCount: 0, CharCountWithSpaces: 45},
	}

	_, err := commands.NewCreateOrderDetailsCommand(kernel.NewUUID(), parts)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCharCountIsInvalid)
}

func TestCreateOrderDetailsCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderDetailsCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderDetailsCommandIsNotConstructed)
}
