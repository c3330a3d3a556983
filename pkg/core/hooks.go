package core

// Listenable is anything that notifies listeners on change.
type Listenable interface {
	AddListener(fn func()) (remove func())
}

// UseController creates a controller and registers it for automatic disposal.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.animator = core.UseController(s, func() *spring.Animator {
//	        return spring.NewAnimator(func() { s.SetState(nil) })
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// The subscription is removed when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}
