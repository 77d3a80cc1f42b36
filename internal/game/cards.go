package game

import "fmt"

// DeckSize is the number of distinct cards in play.
const DeckSize = 9

// Card is one of the nine fixed paintings.
type Card int

const (
	WaterLilies Card = iota
	MonaLisa
	StarryNight
	Guernica
	BlueNude
	TheNightWatch
	ThePotatoEaters
	Haystacks
	Sunflowers
)

// cardInfo is the static definition behind a Card.
type cardInfo struct {
	name        string
	artist      Artist
	value       int
	masterpiece bool
	earlyWork   bool
	pullAlarm   bool
}

var cardTable = [DeckSize]cardInfo{
	WaterLilies:     {name: "WaterLilies", artist: Monet, value: 4},
	MonaLisa:        {name: "MonaLisa", artist: DaVinci, value: 4, masterpiece: true},
	StarryNight:     {name: "StarryNight", artist: VanGogh, value: 3},
	Guernica:        {name: "Guernica", artist: Picasso, value: 3, masterpiece: true},
	BlueNude:        {name: "BlueNude", artist: Picasso, value: 3, earlyWork: true},
	TheNightWatch:   {name: "TheNightWatch", artist: Rembrandt, value: 2, masterpiece: true, pullAlarm: true},
	ThePotatoEaters: {name: "ThePotatoEaters", artist: VanGogh, value: 2, earlyWork: true, pullAlarm: true},
	Haystacks:       {name: "Haystacks", artist: Monet, value: 2},
	Sunflowers:      {name: "Sunflowers", artist: VanGogh, value: 2, masterpiece: true, pullAlarm: true},
}

func (c Card) info() cardInfo {
	if c < 0 || int(c) >= DeckSize {
		panic(fmt.Sprintf("invalid card %d", int(c)))
	}
	return cardTable[c]
}

func (c Card) String() string {
	if c < 0 || int(c) >= DeckSize {
		return fmt.Sprintf("Card(%d)", int(c))
	}
	return cardTable[c].name
}

func (c Card) Artist() Artist {
	return c.info().artist
}

// Value returns the card's point value (2, 3 or 4).
func (c Card) Value() int {
	return c.info().value
}

func (c Card) IsMasterpiece() bool {
	return c.info().masterpiece
}

func (c Card) IsEarlyWork() bool {
	return c.info().earlyWork
}

// IsPullAlarm reports whether holding this card lets a player end the game early.
func (c Card) IsPullAlarm() bool {
	return c.info().pullAlarm
}

// Describe returns a one-line description with artist, value and tags.
func (c Card) Describe() string {
	return fmt.Sprintf("%s (%s, %d, masterpiece: %t, early_work: %t)",
		c, c.Artist(), c.Value(), c.IsMasterpiece(), c.IsEarlyWork())
}

// AllCards returns every card in table order.
func AllCards() [DeckSize]Card {
	var cards [DeckSize]Card
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}
