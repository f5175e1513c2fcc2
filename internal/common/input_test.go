package common

import (
	"testing"

	"github.com/mitchelldurbincs/StrategoElite/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    core.Move
		wantErr bool
	}{
		{"spaces", "0 3 0 4", core.NewMove(0, 3, 0, 4), false},
		{"commas", "1,2,3,2", core.NewMove(1, 2, 3, 2), false},
		{"mixed separators", " 9, 0  9 ,5\n", core.NewMove(9, 0, 9, 5), false},
		{"negative passes through", "-1 0 0 0", core.NewMove(-1, 0, 0, 0), false},
		{"too few", "1 2 3", core.Move{}, true},
		{"too many", "1 2 3 4 5", core.Move{}, true},
		{"not a number", "a 2 3 4", core.Move{}, true},
		{"empty", "", core.Move{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoveInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("3 7")
	require.NoError(t, err)
	assert.Equal(t, core.NewCoordinate(3, 7), c)

	c, err = ParseCoordinate("4,5")
	require.NoError(t, err)
	assert.Equal(t, core.NewCoordinate(4, 5), c)

	_, err = ParseCoordinate("4")
	assert.Error(t, err)
	_, err = ParseCoordinate("x 1")
	assert.Error(t, err)
	_, err = ParseCoordinate("1 y")
	assert.Error(t, err)
}
