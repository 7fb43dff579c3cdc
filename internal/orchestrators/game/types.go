package game

// State is a step in the game's lifecycle
type State string

// Game states. Paused is part of the catalog but the loop never enters it.
const (
	StateInitial    State = "initial"
	StateReady      State = "ready"
	StateInProgress State = "in_progress"
	StateVictory    State = "victory"
	StateGameOver   State = "game_over"
	StatePaused     State = "paused"
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// Terminal reports whether the game has finished
func (s State) Terminal() bool {
	return s == StateVictory || s == StateGameOver
}

// Snapshot keys
const (
	KeyPlayerName       = "player_name"
	KeyPlayerLevel      = "player_level"
	KeyPlayerHealth     = "player_health"
	KeyPlayerMaxHealth  = "player_max_health"
	KeyPlayerDamage     = "player_damage"
	KeyPlayerExperience = "player_experience"
	KeyWeapon           = "weapon"
	KeyState            = "state"
	KeyBossesDefeated   = "bosses_defeated"
	KeyQuestProgress    = "quest_progress"
)

const (
	introTitle = "Welcome to the RPG Adventure!"
	introStory = "In a world where darkness looms, you are the chosen hero destined to " +
		"defeat the evil bosses and restore peace."

	namePrompt     = "Enter your character's name: "
	weaponHeader   = "Choose your weapon:"
	victoryMessage = "Congratulations! You have defeated all the bosses!"
	defeatMessage  = "Game Over. Better luck next time!"
)
