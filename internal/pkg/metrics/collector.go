package metrics

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Snapshot is a point-in-time view of service activity and host load.
type Snapshot struct {
	Analyses       int64     `json:"analyses"`
	Generations    int64     `json:"generations"`
	Passphrases    int64     `json:"passphrases"`
	BreachLookups  int64     `json:"breach_lookups"`
	BreachFailures int64     `json:"breach_failures"`
	CPUPercent     float64   `json:"cpu_percent"`
	MemoryUsedMB   int64     `json:"memory_used_mb"`
	HeapAllocMB    int64     `json:"heap_alloc_mb"`
	UptimeSeconds  int64     `json:"uptime_seconds"`
	Timestamp      time.Time `json:"timestamp"`
}

// Collector counts operations and samples host resources on demand.
// Counters are atomic; the collector is safe for concurrent use.
type Collector struct {
	analyses       atomic.Int64
	generations    atomic.Int64
	passphrases    atomic.Int64
	breachLookups  atomic.Int64
	breachFailures atomic.Int64
	started        time.Time
}

func NewCollector() *Collector {
	return &Collector{started: time.Now()}
}

func (c *Collector) RecordAnalysis()      { c.analyses.Add(1) }
func (c *Collector) RecordGeneration()    { c.generations.Add(1) }
func (c *Collector) RecordPassphrase()    { c.passphrases.Add(1) }
func (c *Collector) RecordBreachLookup()  { c.breachLookups.Add(1) }
func (c *Collector) RecordBreachFailure() { c.breachFailures.Add(1) }

func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		Analyses:       c.analyses.Load(),
		Generations:    c.generations.Load(),
		Passphrases:    c.passphrases.Load(),
		BreachLookups:  c.breachLookups.Load(),
		BreachFailures: c.breachFailures.Load(),
		UptimeSeconds:  int64(time.Since(c.started).Seconds()),
		Timestamp:      time.Now(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryUsedMB = int64(vm.Used / 1024 / 1024)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	snap.HeapAllocMB = int64(ms.Alloc / 1024 / 1024)

	return snap
}
