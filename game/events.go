package game

// Eventos que um quadro da simulação pode produzir. Vários podem acontecer
// no mesmo quadro, por isso é um conjunto de bits.
type Events uint16

const (
	EventRallyStarted Events = 1 << iota
	EventPlayerHit
	EventAIHit
	EventPlayerScored
	EventAIScored
	EventTransitionStarted
	EventTransitionDone
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

var eventNames = []struct {
	flag Events
	name string
}{
	{EventRallyStarted, "rally_started"},
	{EventPlayerHit, "player_hit"},
	{EventAIHit, "ai_hit"},
	{EventPlayerScored, "player_scored"},
	{EventAIScored, "ai_scored"},
	{EventTransitionStarted, "transition_started"},
	{EventTransitionDone, "transition_done"},
}

// Names lista os eventos presentes, para log.
func (e Events) Names() []string {
	var names []string
	for _, n := range eventNames {
		if e.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}
