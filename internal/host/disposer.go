package host

// Disposable is anything that releases a test- or session-scoped resource.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to the Disposable interface.
type DisposeFunc func()

// Dispose calls the function.
func (f DisposeFunc) Dispose() { f() }

// Disposer collects disposables and drains them on teardown.
type Disposer struct {
	items []Disposable
}

// Add appends a disposable to the list.
func (d *Disposer) Add(item Disposable) {
	d.items = append(d.items, item)
}

// AddFunc appends a plain function to the list.
func (d *Disposer) AddFunc(fn func()) {
	d.Add(DisposeFunc(fn))
}

// DisposeAll drains the list in reverse order of registration, so later
// resources tear down before the ones they were built on. The list is
// emptied; a second call is a no-op.
func (d *Disposer) DisposeAll() {
	for i := len(d.items) - 1; i >= 0; i-- {
		d.items[i].Dispose()
	}
	d.items = nil
}
