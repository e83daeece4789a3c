package dispatch

// Queue collects actions emitted during a tick.
type Queue struct {
	actions []Action
}

// Push appends an action.
func (q *Queue) Push(a Action) {
	q.actions = append(q.actions, a)
}

// Len returns the number of queued actions.
func (q *Queue) Len() int {
	return len(q.actions)
}

// Dispatcher owns every store and the pending action queue.
//
// A tick drains the whole queue, handing each action to every store in
// registration order. Actions emitted by stores during a tick are held in a
// fresh queue that becomes the pending queue only once the tick ends, so a
// cascade advances by exactly one tick at a time.
type Dispatcher struct {
	stores  []Store
	pending Queue
	ticks   int
}

// New returns a dispatcher owning stores, in order.
func New(stores ...Store) *Dispatcher {
	return &Dispatcher{stores: stores}
}

// Dispatch queues an action for the next tick.
func (d *Dispatcher) Dispatch(a Action) {
	d.pending.Push(a)
}

// Pending returns the number of actions waiting for the next tick.
func (d *Dispatcher) Pending() int {
	return d.pending.Len()
}

// Ticks returns how many ticks have run.
func (d *Dispatcher) Ticks() int {
	return d.ticks
}

// Tick processes every pending action and returns how many were processed.
func (d *Dispatcher) Tick() int {
	drained := d.pending.actions
	d.pending = Queue{}
	var next Queue
	for _, a := range drained {
		for _, st := range d.stores {
			apply(st, a, &next)
		}
	}
	d.pending = next
	d.ticks++
	return len(drained)
}

// apply hands a to one store. The store set is closed, so this switch is the
// whole dispatch table.
func apply(st Store, a Action, out *Queue) {
	switch s := st.(type) {
	case *PageStore:
		s.update(a)
	case *ExitStore:
		s.update(a)
	case *SessionStore:
		s.update(a, out)
	}
}

// Snapshot is a read-only view of every store for one render.
type Snapshot struct {
	Page    PageView
	Exit    bool
	Session SessionView
}

// Snapshot copies the state of the stores.
func (d *Dispatcher) Snapshot() Snapshot {
	var snap Snapshot
	for _, st := range d.stores {
		switch s := st.(type) {
		case *PageStore:
			snap.Page = PageView{Page: s.page}
		case *ExitStore:
			snap.Exit = snap.Exit || s.exit
		case *SessionStore:
			snap.Session = s.view()
		}
	}
	return snap
}
