// Package system provides the host-facts capability behind the os command:
// line-ending convention, CPU inventory, home directory, account name, and
// process architecture.
package system

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strconv"
	"strings"
)

// CPU describes one logical processor.
type CPU struct {
	Model string
	MHz   float64
}

// Provider answers host fact queries.
type Provider struct{}

// NewProvider creates a host facts provider.
func NewProvider() *Provider {
	return &Provider{}
}

// EOL returns the host's line-ending sequence.
func (*Provider) EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// HomeDir returns the current user's home directory.
func (*Provider) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return home, nil
}

// Username returns the OS account name of the current user.
func (*Provider) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}
	return u.Username, nil
}

// Architecture returns the process architecture string.
func (*Provider) Architecture() string {
	return runtime.GOARCH
}

// CPUs returns the logical CPU inventory. On Linux the model name and clock
// speed come from /proc/cpuinfo; elsewhere the inventory degrades to a count
// of processors tagged with the architecture.
func (*Provider) CPUs() []CPU {
	if runtime.GOOS == "linux" {
		if cpus := readProcCPUInfo("/proc/cpuinfo"); len(cpus) > 0 {
			return cpus
		}
	}
	cpus := make([]CPU, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = CPU{Model: runtime.GOARCH}
	}
	return cpus
}

func readProcCPUInfo(path string) []CPU {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return parseCPUInfo(string(data))
}

func parseCPUInfo(content string) []CPU {
	var cpus []CPU
	var current *CPU
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			current = nil
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "processor":
			cpus = append(cpus, CPU{})
			current = &cpus[len(cpus)-1]
		case "model name":
			if current != nil {
				current.Model = value
			}
		case "cpu MHz":
			if current != nil {
				if mhz, err := strconv.ParseFloat(value, 64); err == nil {
					current.MHz = mhz
				}
			}
		}
	}
	return cpus
}
