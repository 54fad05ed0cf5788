package router

import "sync"

// Manager keeps exactly one live Router. Re-initializing tears the previous
// router down first, so history never carries duplicate listeners.
type Manager struct {
	mu      sync.Mutex
	current *Router
}

// NewManager returns a manager with no router.
func NewManager() *Manager {
	return &Manager{}
}

// Init destroys the current router, then creates and starts a new one.
// Compile errors leave the manager without a router. A start error is returned
// alongside the installed router.
func (m *Manager) Init(history History, routes []Route, opts ...Option) (*Router, error) {
	m.mu.Lock()
	if m.current != nil {
		m.current.Destroy()
		m.current = nil
	}
	r, err := New(history, routes, opts...)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.current = r
	m.mu.Unlock()

	return r, r.Start()
}

// Router returns the live router or ErrNotInitialized.
func (m *Manager) Router() (*Router, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, ErrNotInitialized
	}
	return m.current, nil
}

// MustRouter is Router that panics before initialization.
func (m *Manager) MustRouter() *Router {
	r, err := m.Router()
	if err != nil {
		panic(err)
	}
	return r
}

// Destroy tears down the live router, if any.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		m.current.Destroy()
		m.current = nil
	}
}
