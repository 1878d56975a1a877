package service

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"tickpanel/logger"
)

var startTime = time.Now()

// Status is a point-in-time snapshot of the host and process.
type Status struct {
	Cpu    float64 `json:"cpu"`
	Mem    MemInfo `json:"mem"`
	Uptime uint64  `json:"uptime"`
	AppUp  int64   `json:"appUptime"`
}

type MemInfo struct {
	Current uint64 `json:"current"`
	Total   uint64 `json:"total"`
}

// StatusService reports runtime health for the admin surface.
type StatusService struct{}

func (s *StatusService) GetStatus() *Status {
	status := &Status{
		AppUp: int64(time.Since(startTime).Seconds()),
	}

	if percents, err := cpu.Percent(0, false); err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	if uptime, err := host.Uptime(); err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = uptime
	}

	return status
}
