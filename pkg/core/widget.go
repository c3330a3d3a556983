package core

// Widget is an immutable description of part of the output.
type Widget interface {
	// CreateElement instantiates the widget.
	CreateElement() Element
	// Key distinguishes siblings of the same type. Nil means no key.
	Key() any
}

// StatelessWidget builds its child from configuration alone.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates a State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// BuildContext is the handle a build function receives for its location in
// the tree.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}

// Element is an instantiated widget in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// Disposable is implemented by controllers that hold resources until
// disposed.
type Disposable interface {
	Dispose()
}
