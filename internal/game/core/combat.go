package core

import "fmt"

// CombatResult is the verdict of one battle
type CombatResult struct {
	Outcome Outcome
	Message string
}

// AttackerSurvives reports whether the attacking piece ends on the destination
func (c CombatResult) AttackerSurvives() bool {
	return c.Outcome == OutcomeAttackerWins || c.Outcome == OutcomeFlagCaptured
}

// DefenderSurvives reports whether the defending piece keeps its cell
func (c CombatResult) DefenderSurvives() bool {
	return c.Outcome == OutcomeDefenderWins
}

// ResolveCombat decides a battle between two ranks. Special cases are checked
// in order: flag capture, bomb, assassination, then strength comparison.
func ResolveCombat(attacker, defender Rank, rules RuleSet) CombatResult {
	switch {
	case defender == RankFlag:
		return CombatResult{OutcomeFlagCaptured, "Flag captured!"}

	case defender == RankBomb && attacker == rules.Defuser:
		return CombatResult{OutcomeAttackerWins, fmt.Sprintf("%s defused the Bomb!", attacker)}

	case defender == RankBomb:
		return CombatResult{OutcomeDefenderWins, "BOOM! Attacker blew up."}

	case attacker == rules.Assassin && defender == rules.AssassinTarget:
		return CombatResult{OutcomeAttackerWins, fmt.Sprintf("%s assassinated the %s!", attacker, defender)}
	}

	att, def := attacker.Strength(), defender.Strength()
	switch {
	case att > def:
		return CombatResult{OutcomeAttackerWins, fmt.Sprintf("Attacker (%d) beats Defender (%d)", att, def)}
	case att < def:
		return CombatResult{OutcomeDefenderWins, fmt.Sprintf("Defender (%d) beats Attacker (%d)", def, att)}
	default:
		return CombatResult{OutcomeMutualElimination, fmt.Sprintf("Tie! Both (%d) are eliminated.", att)}
	}
}
