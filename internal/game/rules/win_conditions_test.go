package rules

import (
	"testing"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/mitchelldurbincs/StrategoElite/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func newChecker() *WinConditionChecker {
	return NewWinConditionChecker(testutil.NopLogger(), NewLegalMoveCalculator(core.DefaultRules()))
}

func TestCheckAfterMove_FlagCaptured(t *testing.T) {
	board := testutil.ParseBoard(
		"R4 . . . . .",
		". . . . . .",
		". ~ ~ ~ ~ .",
		". ~ ~ ~ ~ .",
		". . . . . .",
		". . . . B4 .",
	)
	over, winner, reason := newChecker().CheckAfterMove(board, core.Blue, core.OutcomeFlagCaptured)
	assert.True(t, over)
	assert.Equal(t, core.Blue, winner)
	assert.Equal(t, EndFlagCaptured, reason)
	assert.Equal(t, "flag_captured", reason.String())
}

func TestCheckAfterMove_OpponentStuck(t *testing.T) {
	board := testutil.ParseBoard(
		"RF RB . . . .",
		"RB . . . . .",
		". ~ ~ ~ ~ .",
		". ~ ~ ~ ~ .",
		". . . . . .",
		". . . . B4 BF",
	)
	over, winner, reason := newChecker().CheckAfterMove(board, core.Blue, core.OutcomeSimpleMove)
	assert.True(t, over)
	assert.Equal(t, core.Blue, winner)
	assert.Equal(t, EndNoLegalMoves, reason)
}

func TestCheckAfterMove_Continues(t *testing.T) {
	board := testutil.ParseBoard(
		"RF R4 . . . .",
		". . . . . .",
		". ~ ~ ~ ~ .",
		". ~ ~ ~ ~ .",
		". . . . . .",
		". . . . B4 BF",
	)
	checker := newChecker()
	for _, outcome := range []core.Outcome{core.OutcomeSimpleMove, core.OutcomeAttackerWins, core.OutcomeMutualElimination} {
		over, winner, reason := checker.CheckAfterMove(board, core.Blue, outcome)
		assert.False(t, over)
		assert.Equal(t, core.NoSide, winner)
		assert.Equal(t, EndNone, reason)
	}
}

func TestCheckStuck_NoPiecesLeft(t *testing.T) {
	board := core.NewBoard(6)
	testutil.PlacePiece(board, core.RankScout, core.Red, 0, 0)

	over, winner, _ := newChecker().CheckStuck(board, core.Blue)
	assert.True(t, over)
	assert.Equal(t, core.Red, winner)
}
