package performance

import "runtime"

// GoMemoryStats is a small view of the Go runtime heap
type GoMemoryStats struct {
	AllocMB uint64 // Currently allocated heap memory
	SysMB   uint64 // Memory obtained from system
	NumGC   uint32 // Number of GC runs
}

// GetGoMemory retrieves Go runtime memory statistics
func GetGoMemory() GoMemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return GoMemoryStats{
		AllocMB: m.Alloc / (1024 * 1024),
		SysMB:   m.Sys / (1024 * 1024),
		NumGC:   m.NumGC,
	}
}
