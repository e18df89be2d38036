// Package system probes the host: file descriptor limits, available
// memory for sizing the render worker pool, and hardware encoders.
package system

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open file limit. Parallel scene
// encoding holds one ffmpeg pipe per worker plus segment files, which
// overruns conservative defaults.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Failed to read file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Failed to raise file limit: %v", err)
	} else {
		fmt.Printf("[*] Open file limit raised to %d\n", rLimit.Cur)
	}
}

// RenderWorkers picks a worker count for the render pipeline: one per
// CPU, reduced if available memory cannot hold two frame buffers per
// worker (render pools double-buffer while ffmpeg drains).
func RenderWorkers(frameBytes int) int {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if frameBytes <= 0 {
		return workers
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("[!] Failed to read memory stats: %v", err)
		return workers
	}

	perWorker := uint64(frameBytes) * 2
	if perWorker == 0 {
		return workers
	}
	byMemory := int(vm.Available / perWorker)
	if byMemory < 1 {
		byMemory = 1
	}
	if byMemory < workers {
		workers = byMemory
	}
	return workers
}

// BestH264Encoder probes ffmpeg for a hardware H.264 encoder and falls
// back to libx264.
func BestH264Encoder() string {
	candidates := []string{"h264_videotoolbox", "h264_nvenc"}

	out, err := exec.Command("ffmpeg", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}
	for _, name := range candidates {
		if strings.Contains(string(out), name) {
			return name
		}
	}
	return "libx264"
}
