package playback

import (
	"github.com/user/playsketch-cli/geom"
	"github.com/user/playsketch-cli/play"
)

// Scene is a render-only view of a frame or of a transition in progress.
type Scene struct {
	// Index is the frame the scene was produced from.
	Index    int
	Progress float64
	Notes    string
	Players  []play.Player
	Lines    []play.Annotation
	// Ball is the in-flight ball during a pass, nil otherwise.
	Ball *geom.Point
}

// Static returns the scene of a frame shown without motion.
func Static(f *play.Frame) Scene {
	c := f.Clone()
	return Scene{
		Notes:   c.Notes,
		Players: c.Players,
		Lines:   c.Lines,
	}
}

// Interpolate returns the scene at progress along the transition out of f.
// Motion lines move their anchors along the path; a pass takes the ball from
// the passer and carries it along the pass path whether or not it has a
// receiver. Lines are matched to players the same way AddFrame matches them.
func Interpolate(f *play.Frame, progress float64) Scene {
	progress = geom.Clamp01(progress)
	s := Static(f)
	s.Progress = progress

	paths := make(map[int][]geom.Point)
	passer := -1
	var pass []geom.Point
	for _, line := range f.Lines {
		if !line.Valid() {
			continue
		}
		switch {
		case line.Type.IsMotion():
			if i := f.AnchorOf(line); i >= 0 {
				paths[i] = line.Points
			}
		case line.Type == play.Pass:
			if from := f.AnchorOf(line); from >= 0 {
				passer = from
				pass = line.Points
			}
		}
	}

	for i, path := range paths {
		s.Players[i].SetPos(geom.PointOnPath(path, progress))
	}
	if passer >= 0 {
		s.Players[passer].HasBall = false
		ball := geom.PointOnPath(pass, progress)
		s.Ball = &ball
	}
	return s
}

// BallPosition returns where the ball is drawn in the scene, if anywhere.
func (s Scene) BallPosition() (geom.Point, bool) {
	if s.Ball != nil {
		return *s.Ball, true
	}
	for _, p := range s.Players {
		if p.HasBall {
			return p.Pos(), true
		}
	}
	return geom.Point{}, false
}
