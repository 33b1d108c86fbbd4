package recorder

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/unbasical/mockresponse/common"
	"github.com/unbasical/mockresponse/configs"
	"github.com/unbasical/mockresponse/pkg/constants/logging"
)

// Label values of the acquired counter
const (
	SourceNew    = "new"
	SourceReused = "reused"
)

// Pool hands out recorders and takes them back for reuse. Every recorder is
// reset before it is handed out. A Pool may be shared between parallel tests.
type Pool struct {
	mu      sync.Mutex
	idle    []*Recorder
	maxIdle int

	acquired *prometheus.CounterVec
	released prometheus.Counter
	idleSize prometheus.Gauge
}

// NewPool creates a pool keeping at most conf.Idle() released recorders.
// Metrics are registered with reg unless it is nil.
func NewPool(conf configs.PoolConfig, reg prometheus.Registerer) (*Pool, error) {
	p := &Pool{
		maxIdle: conf.Idle(),
		acquired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "mockresponse",
			Subsystem:   "pool",
			Name:        "acquired_total",
			Help:        "Count of recorders handed out, partitioned by whether they were newly allocated or reused.",
			ConstLabels: prometheus.Labels{"version": common.Version},
		}, []string{"source"}),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "mockresponse",
			Subsystem:   "pool",
			Name:        "released_total",
			Help:        "Count of recorders given back to the pool.",
			ConstLabels: prometheus.Labels{"version": common.Version},
		}),
		idleSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "mockresponse",
			Subsystem:   "pool",
			Name:        "idle",
			Help:        "Number of recorders waiting for reuse.",
			ConstLabels: prometheus.Labels{"version": common.Version},
		}),
	}
	if p.maxIdle < 0 {
		return nil, errors.Errorf("pool max-idle must not be negative but was %d", p.maxIdle)
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{p.acquired, p.released, p.idleSize} {
			if err := reg.Register(c); err != nil {
				return nil, errors.Wrap(err, "unable to register pool metrics")
			}
		}
	}
	logging.LogForComponent("RecorderPool").Debugf("Configured recorder pool with max-idle %d", p.maxIdle)
	return p, nil
}

// Acquire returns a recorder in its initial state.
func (p *Pool) Acquire(opts ...Option) *Recorder {
	p.mu.Lock()
	n := len(p.idle)
	if n == 0 {
		p.mu.Unlock()
		p.acquired.WithLabelValues(SourceNew).Inc()
		return New(opts...)
	}
	r := p.idle[n-1]
	p.idle[n-1] = nil
	p.idle = p.idle[:n-1]
	r.pooled = false
	p.idleSize.Set(float64(len(p.idle)))
	p.mu.Unlock()

	r.reset(opts)
	p.acquired.WithLabelValues(SourceReused).Inc()
	return r
}

// Release gives r back to the pool. The caller must not use r afterwards.
// Releasing a recorder which already waits in the pool has no effect.
func (p *Pool) Release(r *Recorder) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if r.pooled {
		logging.LogForConnection("RecorderPool", string(r.connectionID)).Debug("Ignoring duplicate release")
		return
	}
	p.released.Inc()
	if len(p.idle) >= p.maxIdle {
		return
	}
	// Drop whatever the finished test recorded
	r.reset(nil)
	r.pooled = true
	p.idle = append(p.idle, r)
	p.idleSize.Set(float64(len(p.idle)))
}

// Idle returns the number of recorders waiting for reuse.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}
