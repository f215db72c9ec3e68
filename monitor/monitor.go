package monitor

import "sort"

// Monitor holds named counters. Metrics must be registered before use from
// several goroutines, the registry itself is not locked.
type Monitor struct {
	appName    string
	metricList map[string]*Metric
}

func NewMonitor(appName string, nameList ...string) (m *Monitor) {
	m = &Monitor{
		appName:    appName,
		metricList: make(map[string]*Metric, len(nameList)),
	}

	for _, name := range nameList {
		m.Register(name)
	}

	return
}

func (m *Monitor) AppName() string {
	return m.appName
}

// Register adds a metric if it does not exist yet and returns it.
func (m *Monitor) Register(name string) (metric *Metric) {
	if metric, exists := m.metricList[name]; exists {
		return metric
	}

	metric = &Metric{name: name}
	m.metricList[name] = metric
	return metric
}

func (m *Monitor) Add(name string, val uint64) (newValue uint64, exists bool) {
	metric, exists := m.metricList[name]
	if exists {
		return metric.Add(val), exists
	}

	return 0, exists
}

func (m *Monitor) Incr(name string) (newValue uint64, exists bool) {
	return m.Add(name, 1)
}

func (m *Monitor) Set(name string, val uint64) {
	if metric, exists := m.metricList[name]; exists {
		metric.Set(val)
	}
}

func (m *Monitor) GetMetric(name string) (metric *Metric, exists bool) {
	metric, exists = m.metricList[name]
	return
}

func (m *Monitor) Get(name string) (val uint64, exists bool) {
	metric, exists := m.metricList[name]
	if !exists {
		return
	}
	return metric.Get(), true
}

func (m *Monitor) Names() []string {
	names := make([]string, 0, len(m.metricList))
	for name := range m.metricList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Monitor) Snapshot() map[string]uint64 {
	snapshot := make(map[string]uint64, len(m.metricList))
	for name, metric := range m.metricList {
		snapshot[name] = metric.Get()
	}
	return snapshot
}
