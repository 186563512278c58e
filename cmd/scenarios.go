package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/Michozord/sars-simulation/outbreak"
)

// Scenario is one named parameter preset in scenarios.yaml.
type Scenario struct {
	Horizon          float64 `yaml:"horizon"`
	ControlStart     float64 `yaml:"control_start"`
	InitialCases     int     `yaml:"initial_cases"`
	Rho              float64 `yaml:"rho"`
	R0               float64 `yaml:"r_0"`
	SubclinicalProb  float64 `yaml:"subclinical_prob"`
	Presymptomatic   int     `yaml:"transmission_before_symptoms_percentage"`
	OnsetToIsolation string  `yaml:"onset_to_isolation"`
	NumSimulations   int     `yaml:"num_simulations"`
}

// ScenarioFile represents the full scenarios.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenario reads the presets file and returns the named scenario.
func LoadScenario(path, name string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenarios file: %w", err)
	}

	// Parse YAML with strict field checking so preset typos cause errors
	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenarios file: %w", err)
	}

	scenario, ok := file.Scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q in %s", name, path)
	}
	return scenario, nil
}

// scenarioFromFlags assembles a Scenario from the current flag values.
func scenarioFromFlags() Scenario {
	return Scenario{
		Horizon:          horizon,
		ControlStart:     controlStart,
		InitialCases:     initialCases,
		Rho:              rho,
		R0:               r0,
		SubclinicalProb:  subclinicalProb,
		Presymptomatic:   presymptomatic,
		OnsetToIsolation: onsetToIsolation,
		NumSimulations:   numSimulations,
	}
}

// applyFlagOverrides layers explicitly-set flags on top of a preset. Callers
// must use flags.Changed() semantics: a flag left at its default does not
// overwrite the preset value.
func applyFlagOverrides(base Scenario, flags *pflag.FlagSet) Scenario {
	if flags.Changed("horizon") {
		base.Horizon = horizon
	}
	if flags.Changed("control-start") {
		base.ControlStart = controlStart
	}
	if flags.Changed("initial-cases") {
		base.InitialCases = initialCases
	}
	if flags.Changed("rho") {
		base.Rho = rho
	}
	if flags.Changed("r0") {
		base.R0 = r0
	}
	if flags.Changed("subclinical-prob") {
		base.SubclinicalProb = subclinicalProb
	}
	if flags.Changed("presymptomatic") {
		base.Presymptomatic = presymptomatic
	}
	if flags.Changed("onset-to-isolation") {
		base.OnsetToIsolation = onsetToIsolation
	}
	if flags.Changed("num-simulations") {
		base.NumSimulations = numSimulations
	}
	return base
}

// Build validates the scenario and produces the immutable engine
// configuration.
func (s Scenario) Build() (*outbreak.Config, error) {
	return outbreak.NewConfig(
		s.Horizon,
		s.ControlStart,
		s.InitialCases,
		s.Rho,
		s.R0,
		s.SubclinicalProb,
		outbreak.PresymptomaticFraction(s.Presymptomatic),
		outbreak.IsolationDelay(s.OnsetToIsolation),
	)
}
