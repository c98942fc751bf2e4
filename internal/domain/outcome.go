package domain

// Outcome - исход партии. Переходы строго односторонние:
// Ongoing -> Won или Ongoing -> Lost, никогда обратно и никогда оба сразу.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeWon
	OutcomeLost
)

var outcomeNames = map[Outcome]string{
	OutcomeOngoing: "ONGOING",
	OutcomeWon:     "WON",
	OutcomeLost:    "LOST",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// Terminal возвращает true, если партия завершена (дальнейшие ходы - no-op).
func (o Outcome) Terminal() bool {
	return o != OutcomeOngoing
}
