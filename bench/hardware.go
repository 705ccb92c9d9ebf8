package bench

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Hardware describes the machine a run was executed on.
type Hardware struct {
	GOOS          string   `json:"goos"`
	GOARCH        string   `json:"goarch"`
	NumCPU        int      `json:"num_cpu"`
	CacheLineSize int      `json:"cache_line_size"`
	Features      []string `json:"features,omitempty"`
}

// DetectHardware probes the current machine.
func DetectHardware() Hardware {
	return Hardware{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		CacheLineSize: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Features:      cpuFeatures(),
	}
}

type feature struct {
	name string
	ok   bool
}

func cpuFeatures() []string {
	var all []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		all = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"bmi2", cpu.X86.HasBMI2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"avx512bw", cpu.X86.HasAVX512BW},
		}
	case "arm64":
		all = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	var out []string
	for _, f := range all {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
