package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/capacity-sim/sim"
)

// Define struct for YAML
type HardwarePresetFile struct {
	Profiles map[string]sim.HardwareProfile `yaml:"profiles"`
}

// LoadHardwarePresets reads extra hardware profiles from a YAML file and
// merges them over the built-in catalog. File entries win on key collision,
// so users can retune a built-in profile without recompiling.
func LoadHardwarePresets(path string) (map[string]sim.HardwareProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hardware presets %q: %w", path, err)
	}

	var file HardwarePresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse hardware presets %q: %w", path, err)
	}

	merged := make(map[string]sim.HardwareProfile, len(sim.HardwareDB)+len(file.Profiles))
	for k, v := range sim.HardwareDB {
		merged[k] = v
	}
	for k, v := range file.Profiles {
		if v.TTFTMillis <= 0 || v.OutputTokensPerSec <= 0 {
			return nil, fmt.Errorf("hardware preset %q: ttft_ms and output_tokens_per_sec must be positive", k)
		}
		merged[k] = v
	}
	return merged, nil
}
