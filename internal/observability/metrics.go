package observability

// Metrics receives timing events from the services and the HTTP layer.
type Metrics interface {
	ObserveQuery(op string, dbMs float64)
	ObserveInsert(dbMs float64)
	ObserveUpdate(dbMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveQuery(string, float64)             {}
func (Noop) ObserveInsert(float64)                    {}
func (Noop) ObserveUpdate(float64)                    {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
