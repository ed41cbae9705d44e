package core

// teardownList is the ordered record of every resource the bootstrap has
// created so far. Steps are pushed in construction order and unwound in
// exact reverse, so a dependent is always destroyed before the resource it
// depends on. The order lives in this list, not in struct field positions.
type teardownList struct {
	steps []teardownStep
}

type teardownStep struct {
	name    string
	destroy func()
}

func (l *teardownList) push(name string, destroy func()) {
	l.steps = append(l.steps, teardownStep{name: name, destroy: destroy})
}

// unwind destroys every recorded resource in reverse push order and empties
// the list, so a second unwind is a no-op.
func (l *teardownList) unwind() {
	for i := len(l.steps) - 1; i >= 0; i-- {
		l.steps[i].destroy()
	}
	l.steps = nil
}

func (l *teardownList) len() int {
	return len(l.steps)
}
