package migration

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 迁移结果计数
type Metrics struct {
	runs *prometheus.CounterVec
}

// NewMetrics 创建并注册计数器，reg 为 nil 时不注册
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "menubar",
			Subsystem: "migration",
			Name:      "entries_total",
			Help:      "Number of migration entries processed, by release version and status.",
		}, []string{"version", "status"}),
	}
	if reg != nil {
		if err := reg.Register(m.runs); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(version string, status Status) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(version, string(status)).Inc()
}
