// Package entity defines the simulated objects of the arena and the store
// that owns them.
package entity

import "strings"

// Flags is a set of independent tags describing what an entity is.
// Tags combine freely: a player's bullet carries both Player and Bullet.
type Flags uint8

const (
	Player Flags = 1 << iota
	Enemy
	Bullet
	Smart
	DespawnOffScreen
)

var flagNames = [...]struct {
	f    Flags
	name string
}{
	{Player, "Player"},
	{Enemy, "Enemy"},
	{Bullet, "Bullet"},
	{Smart, "Smart"},
	{DespawnOffScreen, "DespawnOffScreen"},
}

// Has reports whether every tag in o is set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Intersects reports whether any tag in o is set.
func (f Flags) Intersects(o Flags) bool {
	return f&o != 0
}

// With returns f with the tags in o added.
func (f Flags) With(o Flags) Flags {
	return f | o
}

// Without returns f with the tags in o removed.
func (f Flags) Without(o Flags) Flags {
	return f &^ o
}

// String lists the set tags, e.g. "Player|Bullet".
func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for _, n := range flagNames {
		if f.Has(n.f) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
