package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveError(t *testing.T) {
	err := reject(RejectFriendlyFire, Red, NewCoordinate(1, 1), NewCoordinate(1, 2), "")

	assert.Equal(t, "Red move (1,1) -> (1,2): destination occupied by own piece", err.Error())
	assert.True(t, errors.Is(err, ErrFriendlyFire))
	assert.False(t, errors.Is(err, ErrWrongTurn))
	assert.Equal(t, RejectFriendlyFire, RejectionOf(err))

	wrapped := fmt.Errorf("submit: %w", err)
	assert.Equal(t, RejectFriendlyFire, RejectionOf(wrapped))
	assert.True(t, errors.Is(wrapped, ErrFriendlyFire))
}

func TestMoveError_Detail(t *testing.T) {
	err := reject(RejectInvalidShape, Blue, NewCoordinate(0, 0), NewCoordinate(1, 1), "must move in a straight line")
	assert.Equal(t, "Blue move (0,0) -> (1,1): illegal movement shape (must move in a straight line)", err.Error())
}

func TestRejectionOf_NonRejection(t *testing.T) {
	assert.Equal(t, RejectNone, RejectionOf(nil))
	assert.Equal(t, RejectNone, RejectionOf(ErrGameOver))
}

func TestRejection_String(t *testing.T) {
	tests := []struct {
		r    Rejection
		name string
		err  error
	}{
		{RejectNone, "None", nil},
		{RejectOutOfBounds, "OutOfBounds", ErrOutOfBounds},
		{RejectNoPieceAtStart, "NoPieceAtStart", ErrNoPieceAtStart},
		{RejectWrongTurn, "WrongTurn", ErrWrongTurn},
		{RejectImmobile, "Immobile", ErrImmobile},
		{RejectLakeDestination, "LakeDestination", ErrLakeDestination},
		{RejectFriendlyFire, "FriendlyFireBlocked", ErrFriendlyFire},
		{RejectInvalidShape, "InvalidShape", ErrInvalidShape},
		{Rejection(42), "Rejection(42)", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.r.String())
			assert.Equal(t, tt.err, tt.r.Err())
		})
	}
}

func TestWrapGameStateError(t *testing.T) {
	assert.Nil(t, WrapGameStateError(3, "InProgress", nil))

	wrapped := WrapGameStateError(12, "Finished", ErrGameOver)
	require.NotNil(t, wrapped)
	assert.Equal(t, "game turn 12 [Finished]: game is over", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrGameOver))
}

func TestWrapSideError(t *testing.T) {
	assert.Nil(t, WrapSideError(Red, "deploy", nil))

	wrapped := WrapSideError(Blue, "deploy", ErrAlreadyDeployed)
	assert.Equal(t, "Blue deploy: side already deployed", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrAlreadyDeployed))
}
