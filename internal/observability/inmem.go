package observability

import "sync"

type observe struct {
	Kind          string
	Op            string
	Method, Route string
	Status        int
	Dur           float64
}

// Inmem keeps the last max observations in memory. Cheap stand-in for a real
// metrics backend; handy in tests and local runs.
type Inmem struct {
	mu   sync.Mutex
	last []*observe
	max  int
}

func NewInmem(max int) *Inmem {
	return &Inmem{max: max}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveQuery(op string, dbMs float64) {
	m.push(&observe{Kind: "query", Op: op, Dur: dbMs})
}

func (m *Inmem) ObserveInsert(dbMs float64) {
	m.push(&observe{Kind: "insert", Dur: dbMs})
}

func (m *Inmem) ObserveUpdate(dbMs float64) {
	m.push(&observe{Kind: "update", Dur: dbMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}
