// Package sysmon samples system-wide CPU and memory usage and exposes the
// samples as Prometheus gauges.
package sysmon

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 `json:"cpu_percent"` // 0.0 .. 100.0
	MemPercent float64 `json:"mem_percent"` // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Sampler caches the last snapshot for maxAge so that a scrape and a health
// check arriving together share one system call.
type Sampler struct {
	mu     sync.Mutex
	maxAge time.Duration
	at     time.Time
	last   Stats
	sample func() Stats
}

// NewSampler creates a Sampler reusing snapshots younger than maxAge.
func NewSampler(maxAge time.Duration) *Sampler {
	return &Sampler{maxAge: maxAge, sample: Sample}
}

// Stats returns a snapshot no older than maxAge.
func (s *Sampler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.at.IsZero() || time.Since(s.at) >= s.maxAge {
		s.last = s.sample()
		s.at = time.Now()
	}
	return s.last
}

// Collectors returns gauges reading from s, named <namespace>_system_cpu_percent
// and <namespace>_system_memory_percent.
func (s *Sampler) Collectors(namespace string) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_cpu_percent",
			Help:      "System-wide CPU usage in percent.",
		}, func() float64 { return s.Stats().CPUPercent }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_memory_percent",
			Help:      "System-wide memory usage in percent.",
		}, func() float64 { return s.Stats().MemPercent }),
	}
}
