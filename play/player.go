package play

import (
	"strings"

	"github.com/google/uuid"
	"github.com/user/playsketch-cli/geom"
)

const (
	// DefaultRadius is the visual and hit-test radius of a player token.
	DefaultRadius = 15.0
	// DefensePrefix marks defensive labels such as "X1".
	DefensePrefix = "X"
)

// OffenseLabels and DefenseLabels are the palette tokens a user can drop on the court.
var (
	OffenseLabels = []string{"1", "2", "3", "4", "5"}
	DefenseLabels = []string{"X1", "X2", "X3", "X4", "X5"}
)

// Player is a token on the court. It is owned by exactly one Frame.
type Player struct {
	// ID is stable across carry-forward; empty for players loaded from id-less files.
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	X         float64 `json:"x" yaml:"x"`
	Y         float64 `json:"y" yaml:"y"`
	Radius    float64 `json:"radius" yaml:"radius"`
	Label     string  `json:"label" yaml:"label"`
	HasBall   bool    `json:"hasBall" yaml:"hasBall"`
	IsOffense bool    `json:"isOffense" yaml:"isOffense"`
}

// NewPlayer creates a player from a palette label. The team is derived from the label.
func NewPlayer(label string, at geom.Point, radius float64) Player {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Player{
		ID:        uuid.NewString(),
		X:         at.X,
		Y:         at.Y,
		Radius:    radius,
		Label:     label,
		IsOffense: IsOffenseLabel(label),
	}
}

// IsOffenseLabel reports whether a label belongs to the offense.
func IsOffenseLabel(label string) bool {
	return !strings.HasPrefix(label, DefensePrefix)
}

// Pos returns the player's centre.
func (p Player) Pos() geom.Point {
	return geom.Pt(p.X, p.Y)
}

// SetPos moves the player's centre.
func (p *Player) SetPos(pt geom.Point) {
	p.X, p.Y = pt.X, pt.Y
}

// Contains reports whether pt is strictly inside the player's radius.
func (p Player) Contains(pt geom.Point) bool {
	return geom.Distance(p.Pos(), pt) < p.Radius
}
