package monitor

import "sync/atomic"

type Metric struct {
	name  string
	value atomic.Uint64
}

func (m *Metric) Name() string {
	return m.name
}

func (m *Metric) Add(val uint64) (newValue uint64) {
	return m.value.Add(val)
}

func (m *Metric) Set(val uint64) {
	m.value.Store(val)
}

func (m *Metric) Get() (val uint64) {
	return m.value.Load()
}
