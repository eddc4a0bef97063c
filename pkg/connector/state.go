package connector

import "github.com/matzehuels/linkdraw/pkg/scene"

// Highlight switches the whole connector to the emphasis state.
func (e *Element) Highlight() { e.setState(scene.StateEmphasis) }

// Downplay switches the whole connector back to the normal state.
func (e *Element) Downplay() { e.setState(scene.StateNormal) }

// State returns the connector's interaction state.
func (e *Element) State() scene.State { return e.state }

func (e *Element) setState(s scene.State) {
	e.state = s
	e.group.SetState(s)
	e.line.SetState(s)
	e.label.SetState(s)
	for _, m := range e.markers {
		if m != nil {
			m.SetState(s)
		}
	}
}
