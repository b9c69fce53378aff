package grid

import (
	"math/bits"
	"math/rand"
	"strings"
)

// Direction is one of the four compass sides of a cell.
type Direction uint8

const (
	East Direction = iota
	North
	West
	South
)

// Directions lists every direction in canonical order.
var Directions = [4]Direction{East, North, West, South}

var directionNames = [4]string{"east", "north", "west", "south"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Opposite returns the direction pointing the other way.
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Offset returns the unit (dx, dy) of d. North is +y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case North:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, -1
	}
}

// Set returns the singleton Set containing d.
func (d Direction) Set() Set {
	return Set(1) << d
}

// Set is a bitmask over the four directions. The zero value is empty.
type Set uint8

const (
	// NoDirections is the empty set.
	NoDirections Set = 0
	// AllDirections holds all four directions.
	AllDirections Set = 0x0f
)

// SetOf builds a Set from the given directions.
func SetOf(ds ...Direction) Set {
	var s Set
	for _, d := range ds {
		s |= d.Set()
	}
	return s
}

// Has reports whether d is in s.
func (s Set) Has(d Direction) bool { return s&d.Set() != 0 }

// With returns s ∪ {d}.
func (s Set) With(d Direction) Set { return s | d.Set() }

// Without returns s \ {d}.
func (s Set) Without(d Direction) Set { return s &^ d.Set() }

// Complement returns the directions not in s.
func (s Set) Complement() Set { return ^s & AllDirections }

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// Xor returns the symmetric difference of s and o.
func (s Set) Xor(o Set) Set { return (s ^ o) & AllDirections }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s&AllDirections == 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount8(uint8(s & AllDirections)) }

// Slice returns the members in canonical order (E, N, W, S).
func (s Set) Slice() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Choose picks a member uniformly at random. ok is false for an empty set.
// Members are enumerated in canonical order, so a seeded rng yields the
// same choice on every platform.
// Complexity: O(1).
func (s Set) Choose(rng *rand.Rand) (d Direction, ok bool) {
	n := s.Len()
	if n == 0 {
		return East, false
	}
	k := rng.Intn(n)
	for _, d = range Directions {
		if !s.Has(d) {
			continue
		}
		if k == 0 {
			return d, true
		}
		k--
	}
	return East, false
}

// String renders s as "{east,north}".
func (s Set) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
