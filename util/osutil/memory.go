package osutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/pbnjay/memory"
)

const (
	// This is the default value for cgroup v1 limit_in_bytes. It is not a
	// valid limit and indicates that the memory is not restricted.
	unrestrictedMemoryLimit = 9223372036854771712
)

var cgroupMemoryLimitLocations = []string{
	"/sys/fs/cgroup/memory/memory.limit_in_bytes",
	"/sys/fs/cgroup/memory.max",
}

// TotalMemory returns the total memory available to the process. The call is
// container-aware.
func TotalMemory() uint64 {
	totalMemory := memory.TotalMemory()
	for _, location := range cgroupMemoryLimitLocations {
		if limit, ok := readCgroupLimit(location); ok && (totalMemory == 0 || limit < totalMemory) {
			totalMemory = limit
		}
	}
	return totalMemory
}

func readCgroupLimit(location string) (uint64, bool) {
	raw, err := os.ReadFile(location)
	if err != nil {
		return 0, false
	}
	return parseCgroupLimit(string(raw))
}

func parseCgroupLimit(raw string) (uint64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || value == "max" {
		return 0, false
	}
	limit, err := strconv.ParseUint(value, 10, 64)
	if err != nil || limit == 0 || limit >= unrestrictedMemoryLimit {
		return 0, false
	}
	return limit, true
}
