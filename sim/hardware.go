package sim

import "sort"

// HardwareProfile holds the per-device performance characteristics for a
// named accelerator. TTFT and decode rate are rough estimates for a
// Llama-3-70B scale model under standard serving optimizations; real numbers
// vary with quantization and tensor-parallel degree.
type HardwareProfile struct {
	Name               string  `yaml:"name"`
	Description        string  `yaml:"description"`
	TTFTMillis         float64 `yaml:"ttft_ms"`
	OutputTokensPerSec float64 `yaml:"output_tokens_per_sec"`
	MaxBatchSize       int     `yaml:"max_batch_size"`
	MemoryGB           int     `yaml:"memory_gb"`
}

// DefaultProfileKey is the fallback profile returned for unknown keys.
const DefaultProfileKey = "Custom"

// HardwareDB is the built-in accelerator catalog, keyed by profile id.
var HardwareDB = map[string]HardwareProfile{
	"NVIDIA_A100_80GB": {
		Name:               "NVIDIA A100 (80GB)",
		Description:        "Standard workhorse for LLM inference (Ampere).",
		TTFTMillis:         150.0,
		OutputTokensPerSec: 45.0,
		MaxBatchSize:       128,
		MemoryGB:           80,
	},
	"NVIDIA_H100": {
		Name:               "NVIDIA H100 (CNX)",
		Description:        "High performance Hopper architecture with FP8 support.",
		TTFTMillis:         70.0,
		OutputTokensPerSec: 110.0,
		MaxBatchSize:       256,
		MemoryGB:           80,
	},
	"NVIDIA_GB200": {
		Name:               "NVIDIA GB200 (Blackwell)",
		Description:        "Next-gen unified memory architecture. Extremely high throughput.",
		TTFTMillis:         40.0,
		OutputTokensPerSec: 220.0,
		MaxBatchSize:       512,
		MemoryGB:           192,
	},
	"Google_TPU_v5e": {
		Name:               "Google TPU v5e",
		Description:        "Efficient inference-optimized TPU pod slice.",
		TTFTMillis:         180.0,
		OutputTokensPerSec: 35.0,
		MaxBatchSize:       64,
		MemoryGB:           32,
	},
	"Google_TPU_v5p": {
		Name:               "Google TPU v5p",
		Description:        "Performance-tier TPU for training and heavy inference.",
		TTFTMillis:         80.0,
		OutputTokensPerSec: 95.0,
		MaxBatchSize:       128,
		MemoryGB:           95,
	},
	DefaultProfileKey: {
		Name:               "Custom Hardware",
		Description:        "User defined specifications.",
		TTFTMillis:         100.0,
		OutputTokensPerSec: 50.0,
		MaxBatchSize:       128,
		MemoryGB:           80,
	},
}

// GetProfile looks up a hardware profile by key, falling back to the Custom
// profile for unknown keys.
func GetProfile(key string) HardwareProfile {
	if p, ok := HardwareDB[key]; ok {
		return p
	}
	return HardwareDB[DefaultProfileKey]
}

// ProfileKeys returns the catalog keys in sorted order, for help text and
// deterministic listings.
func ProfileKeys() []string {
	keys := make([]string, 0, len(HardwareDB))
	for k := range HardwareDB {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
