package sources

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// availableMemoryBytes reads MemAvailable from /proc/meminfo, falling back to
// MemFree on older kernels. Returns 0 when the file is unreadable (non-Linux
// hosts), which callers treat as "size chunks by the default".
func availableMemoryBytes() uint64 {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	var available, free uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemAvailable:":
			available = kb * 1024
		case "MemFree:":
			free = kb * 1024
		}
	}

	if available == 0 {
		available = free
	}
	return available
}
