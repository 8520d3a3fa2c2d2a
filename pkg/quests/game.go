package quests

// MaxHealth is the health pool every avatar starts and is restored to.
const MaxHealth = 50

// XP awards and penalties scale with task difficulty.
const (
	xpPerDifficulty      = 10
	habitXPPerDifficulty = 5
	penaltyPerDifficulty = 5
	levelUpHealthBonus   = 5
)

// Game is the avatar state driven by quest activity.
type Game struct {
	Health int `json:"health"`
	XP     int `json:"xp"`
	Level  int `json:"level"`
}

// NewGame returns a fresh level-1 avatar at full health.
func NewGame() Game {
	return Game{Health: MaxHealth, XP: 0, Level: 1}
}

// NextLevelXP is the XP required to finish the current level.
func (g *Game) NextLevelXP() int {
	if g.Level < 1 {
		g.Level = 1
	}
	return g.Level * 100
}

// GainXP adds experience, applying as many level-ups as the amount covers.
// Each level-up restores a little health.
func (g *Game) GainXP(amount int) {
	if amount <= 0 {
		return
	}
	g.XP += amount
	for g.XP >= g.NextLevelXP() {
		g.XP -= g.NextLevelXP()
		g.Level++
		g.Health += levelUpHealthBonus
		if g.Health > MaxHealth {
			g.Health = MaxHealth
		}
	}
}

// LoseHealth subtracts health. Hitting zero costs a level, clears XP, and
// restores the pool so the game can continue.
func (g *Game) LoseHealth(amount int) {
	if amount <= 0 {
		return
	}
	g.Health -= amount
	if g.Health > 0 {
		return
	}
	if g.Level > 1 {
		g.Level--
	}
	g.XP = 0
	g.Health = MaxHealth
}
