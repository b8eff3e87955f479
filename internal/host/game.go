package host

import "github.com/rcliao/event-repeater/internal/model"

// Player holds the three collections the repeater filters.
type Player struct {
	EventsSeen        *Collection[int]
	MailReceived      *Collection[string]
	ResponsesAnswered *Collection[int]
}

// NewPlayer returns a player with empty collections.
func NewPlayer() *Player {
	return &Player{
		EventsSeen:        NewCollection[int](),
		MailReceived:      NewCollection[string](),
		ResponsesAnswered: NewCollection[int](),
	}
}

// Game is the host world state visible to the repeater.
type Game struct {
	Day             int
	Player          *Player
	CurrentEvent    *model.Event
	MailForTomorrow []string
	Mailbox         []string
}

// NewGame returns a game on day zero with an empty player.
func NewGame() *Game {
	return &Game{Player: NewPlayer()}
}

// AddMailForTomorrow queues a letter for delivery when the next day starts.
func (g *Game) AddMailForTomorrow(key string) {
	for _, k := range g.MailForTomorrow {
		if k == key {
			return
		}
	}
	g.MailForTomorrow = append(g.MailForTomorrow, key)
}

// advanceDay moves the calendar forward and delivers queued mail.
func (g *Game) advanceDay() {
	g.Day++
	g.Mailbox = append(g.Mailbox, g.MailForTomorrow...)
	g.MailForTomorrow = nil
}
