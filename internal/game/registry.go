package game

import "fmt"

// CardRegistry maps card names to cards.
var CardRegistry = map[string]Card{
	"WaterLilies":     WaterLilies,
	"MonaLisa":        MonaLisa,
	"StarryNight":     StarryNight,
	"Guernica":        Guernica,
	"BlueNude":        BlueNude,
	"TheNightWatch":   TheNightWatch,
	"ThePotatoEaters": ThePotatoEaters,
	"Haystacks":       Haystacks,
	"Sunflowers":      Sunflowers,
}

// ParseCard looks up a card by name.
func ParseCard(name string) (Card, error) {
	c, ok := CardRegistry[name]
	if !ok {
		return 0, fmt.Errorf("card not found in registry: %q", name)
	}
	return c, nil
}

// LookupCard looks up a card by name.
// Panics if the card is not found.
func LookupCard(name string) Card {
	c, err := ParseCard(name)
	if err != nil {
		panic(err.Error())
	}
	return c
}
