package core

import "fmt"

// RuleSet names the ranks that carry special behavior
type RuleSet struct {
	Immobile       []Rank
	Defuser        Rank // the only rank that survives attacking a Bomb
	Assassin       Rank // wins when attacking AssassinTarget
	AssassinTarget Rank
	LongRange      Rank // moves any distance along a clear straight line
}

// DefaultRules returns the classic rule set
func DefaultRules() RuleSet {
	return RuleSet{
		Immobile:       []Rank{RankFlag, RankBomb},
		Defuser:        RankMiner,
		Assassin:       RankSpy,
		AssassinTarget: RankMarshal,
		LongRange:      RankScout,
	}
}

// IsImmobile reports whether pieces of the given rank can never move
func (r RuleSet) IsImmobile(rank Rank) bool {
	for _, im := range r.Immobile {
		if im == rank {
			return true
		}
	}
	return false
}

// IsLongRange reports whether the rank uses straight-line movement
func (r RuleSet) IsLongRange(rank Rank) bool {
	return rank == r.LongRange
}

// Validate checks that the rule set is internally consistent
func (r RuleSet) Validate() error {
	for _, rank := range []Rank{r.Defuser, r.Assassin, r.AssassinTarget, r.LongRange} {
		if rank == RankUnknown {
			return fmt.Errorf("rule set has unassigned special rank")
		}
		if r.IsImmobile(rank) {
			return fmt.Errorf("special rank %s cannot be immobile", rank)
		}
	}
	if !r.IsImmobile(RankFlag) {
		return fmt.Errorf("flag must be immobile")
	}
	return nil
}
