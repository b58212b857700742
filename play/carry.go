package play

// AddFrame plays out the current frame's lines into a new frame and makes it
// active. Players are copied; every motion line moves its anchor to the line's end
// point; a pass hands the ball from passer to receiver. The new frame starts with
// no lines and no notes.
//
// Lines are applied in insertion order, so when several lines share an anchor the
// last one wins. Lines whose players cannot be resolved are skipped. A receiver
// takes the ball from whoever holds it, keeping a single holder per frame.
func (p *Play) AddFrame() *Frame {
	src := p.Current()
	next := Frame{
		Players: append([]Player(nil), src.Players...),
	}

	passer := -1
	for _, line := range src.Lines {
		if !line.Valid() {
			continue
		}
		switch {
		case line.Type.IsMotion():
			if i := next.AnchorOf(line); i >= 0 {
				next.Players[i].SetPos(line.End())
			}
		case line.Type == Pass:
			from := next.AnchorOf(line)
			to := next.TargetOf(line)
			if from >= 0 && to >= 0 {
				next.GiveBall(to)
				passer = from
			}
		}
	}
	if passer >= 0 {
		next.Players[passer].HasBall = false
	}

	return p.appendFrame(next)
}
