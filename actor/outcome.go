package actor

// Outcome is the terminal state of a run. Only the player's Update writes it, and once Ended it never changes.
type Outcome struct {
	Ended bool
	Lost  bool
	Won   bool
}

// Record folds one tick of collision results into the outcome and reports whether it changed.
// A wreck in the same tick as a landing counts as a loss.
func (o *Outcome) Record(landed, wrecked bool) bool {
	if o.Ended {
		return false
	}

	switch {
	case wrecked:
		o.Lost = true
	case landed:
		o.Won = true
	default:
		return false
	}
	o.Ended = true

	return true
}
