// Package core provides the widget and element lifecycle that hosts spring
// animations.
//
// Widgets are immutable descriptions of output. Elements instantiate them
// at a location in the tree and own their lifecycle. A [StatefulWidget]
// creates a [State] that survives rebuilds:
//
//   - InitState runs once when the element mounts.
//   - DidUpdateWidget runs whenever the parent supplies a new widget of the
//     same type and key.
//   - Build produces the child widget. It runs after mount, after every
//     update, and after SetState.
//   - Dispose runs once when the element unmounts.
//
// For state types, embed [StateBase]:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return label{Text: fmt.Sprint(s.count)}
//	}
//
// SetState marks the element dirty; the [BuildOwner] rebuilds dirty
// elements in depth order when the frame loop calls FlushBuild.
package core
