package dto

// MemoryStatsDTO carries process memory diagnostics
type MemoryStatsDTO struct {
	AllocMB uint64 `json:"allocMb"`
	SysMB   uint64 `json:"sysMb"`
	NumGC   uint32 `json:"numGc"`
}

// HealthResponseDTO is returned from the health endpoint
type HealthResponseDTO struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Uptime   string         `json:"uptime"`
	Memory   MemoryStatsDTO `json:"memory"`
}
