package play

import (
	"fmt"
	"strings"

	"github.com/user/playsketch-cli/geom"
)

// Kind is the action a path annotation represents.
type Kind string

const (
	Cut     Kind = "cut"
	Move    Kind = "move"
	Dribble Kind = "dribble"
	Pass    Kind = "pass"
	Screen  Kind = "screen"
	Shoot   Kind = "shoot"
)

// Kinds lists every annotation kind in toolbar order.
var Kinds = []Kind{Cut, Dribble, Pass, Screen, Shoot, Move}

// ParseKind converts a persisted type string to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// IsMotion reports whether the annotation relocates its anchor player.
func (k Kind) IsMotion() bool {
	switch k {
	case Cut, Move, Dribble, Shoot, Screen:
		return true
	}
	return false
}

// Annotation is a typed, multi-point path drawn from a player.
type Annotation struct {
	Type   Kind         `json:"type" yaml:"type"`
	Points []geom.Point `json:"points" yaml:"points"`
	// PlayerID references the anchor player when known.
	PlayerID string `json:"playerId,omitempty" yaml:"playerId,omitempty"`
	// TargetID references the player the path snapped to on commit.
	TargetID string `json:"targetId,omitempty" yaml:"targetId,omitempty"`
}

// Start returns the first waypoint.
func (a Annotation) Start() geom.Point {
	if len(a.Points) == 0 {
		return geom.Point{}
	}
	return a.Points[0]
}

// End returns the last waypoint.
func (a Annotation) End() geom.Point {
	if len(a.Points) == 0 {
		return geom.Point{}
	}
	return a.Points[len(a.Points)-1]
}

// Valid reports whether the annotation has enough waypoints to be committed.
func (a Annotation) Valid() bool {
	return len(a.Points) >= 2
}

// Clone returns a copy that shares no waypoint storage with a.
func (a Annotation) Clone() Annotation {
	c := a
	c.Points = append([]geom.Point(nil), a.Points...)
	return c
}
