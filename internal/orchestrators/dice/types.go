package dice

// RollInput defines the request for a notation roll
type RollInput struct {
	// Notation is "XdY", "dY" or a bare die size, with an optional
	// "+N" or "-N" modifier, e.g. "4d6", "d20+2", "100".
	Notation string
	// DropLowest removes that many of the lowest dice from the total
	DropLowest int
}

// RollOutput defines the response for a notation roll
type RollOutput struct {
	Roll *Roll
}

// Roll is the result of one notation roll
type Roll struct {
	Notation string
	// Dice are the kept dice in the order rolled
	Dice     []int
	Dropped  []int
	Modifier int
	Total    int
}

// Notation is a parsed dice expression
type Notation struct {
	Count    int
	Sides    int
	Modifier int
}
