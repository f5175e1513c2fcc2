package core

import (
	"fmt"
	"strings"
)

// Side identifies one of the two competing armies.
type Side int

const (
	NoSide Side = iota
	Red
	Blue
)

// Sides lists the playable sides in turn order
var Sides = [...]Side{Red, Blue}

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case NoSide:
		return "None"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opponent returns the other playable side. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoSide
	}
}

// Forward returns the y direction this side advances in.
// Red deploys on the top rows and moves down the board; Blue the reverse.
func (s Side) Forward() int {
	if s == Blue {
		return -1
	}
	return 1
}

// BackRow returns the row index of this side's back row on a board of the given size
func (s Side) BackRow(size int) int {
	if s == Blue {
		return size - 1
	}
	return 0
}

// ParseSide converts a case-insensitive side name to a Side
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "blue":
		return Blue, nil
	default:
		return NoSide, fmt.Errorf("unknown side %q", s)
	}
}

// Rank is a piece's combat category. Numbered ranks compare by Strength; Flag,
// Bomb and Spy carry special rules handled by ResolveCombat.
type Rank int

const (
	RankUnknown Rank = iota
	RankFlag
	RankBomb
	RankSpy
	RankScout
	RankMiner
	RankSergeant
	RankLieutenant
	RankCaptain
	RankMajor
	RankColonel
	RankGeneral
	RankMarshal
)

// AllRanks lists every real rank from strongest to weakest, specials last
var AllRanks = [...]Rank{
	RankMarshal, RankGeneral, RankColonel, RankMajor, RankCaptain, RankLieutenant,
	RankSergeant, RankMiner, RankScout, RankSpy, RankBomb, RankFlag,
}

var rankNames = map[Rank]string{
	RankUnknown:    "Unknown",
	RankFlag:       "Flag",
	RankBomb:       "Bomb",
	RankSpy:        "Spy",
	RankScout:      "Scout",
	RankMiner:      "Miner",
	RankSergeant:   "Sergeant",
	RankLieutenant: "Lieutenant",
	RankCaptain:    "Captain",
	RankMajor:      "Major",
	RankColonel:    "Colonel",
	RankGeneral:    "General",
	RankMarshal:    "Marshal",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Strength returns the value used in ordinary combat comparisons.
// Scout=2 through Marshal=10, Spy counts as 1, Flag and Bomb have none.
func (r Rank) Strength() int {
	switch {
	case r == RankSpy:
		return 1
	case r >= RankScout && r <= RankMarshal:
		return int(r-RankScout) + 2
	default:
		return 0
	}
}

// Symbol returns the short label used by the text renderer
func (r Rank) Symbol() string {
	switch r {
	case RankFlag:
		return "F"
	case RankBomb:
		return "B"
	case RankSpy:
		return "S"
	case RankUnknown:
		return "?"
	default:
		return fmt.Sprintf("%d", r.Strength())
	}
}

// ParseRank converts a case-insensitive rank name (as used in config files) to a Rank
func ParseRank(s string) (Rank, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range rankNames {
		if r != RankUnknown && strings.ToLower(n) == name {
			return r, nil
		}
	}
	return RankUnknown, fmt.Errorf("unknown rank %q", s)
}

// Piece is one unit on the board. It has no position field; the board's cell
// slice is the single source of truth for where a piece stands.
type Piece struct {
	ID       int
	Rank     Rank
	Side     Side
	Revealed bool
	movable  bool
}

// NewPiece creates a piece whose mobility is fixed by the rule set
func NewPiece(id int, rank Rank, side Side, rules RuleSet) *Piece {
	return &Piece{
		ID:      id,
		Rank:    rank,
		Side:    side,
		movable: !rules.IsImmobile(rank),
	}
}

// Movable reports whether the piece may ever move. Fixed at creation.
func (p *Piece) Movable() bool { return p.movable }

// Reveal marks the piece as known to the opponent
func (p *Piece) Reveal() { p.Revealed = true }

func (p *Piece) String() string {
	return fmt.Sprintf("%c%s", p.Side.String()[0], p.Rank.Symbol())
}

// PieceInfo is the side and rank of a piece, copied into reports
type PieceInfo struct {
	Side Side
	Rank Rank
}

// Info returns the piece's side and rank
func (p *Piece) Info() PieceInfo {
	if p == nil {
		return PieceInfo{}
	}
	return PieceInfo{Side: p.Side, Rank: p.Rank}
}
