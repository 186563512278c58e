package outbreak

import "fmt"

// PresymptomaticFraction selects the share of transmission that occurs before
// symptom onset, in percent. Closed set: 1, 15 or 30.
type PresymptomaticFraction int

const (
	Presymptomatic1  PresymptomaticFraction = 1
	Presymptomatic15 PresymptomaticFraction = 15
	Presymptomatic30 PresymptomaticFraction = 30
)

// IsolationDelay selects the onset-to-isolation delay distribution.
// Closed set: "short" or "long".
type IsolationDelay string

const (
	IsolationDelayShort IsolationDelay = "short"
	IsolationDelayLong  IsolationDelay = "long"
)

// Fixed epidemiological constants, independent of any selector.
const (
	// Dispersion is the negative-binomial dispersion (overdispersion)
	// parameter of the offspring distribution.
	Dispersion = 0.16

	// SerialScale is the scale of the skew-normal serial-interval distribution.
	SerialScale = 2.0

	// IncubationShape and IncubationScale parameterize the Weibull
	// incubation-period distribution.
	IncubationShape = 2.3227
	IncubationScale = 6.4923
)

type weibullParams struct {
	shape float64
	scale float64
}

// serialSkewnessByFraction maps the pre-symptomatic transmission selector to
// the skewness of the serial-interval distribution. More transmission before
// symptoms means a less skewed (earlier-peaking) infectiousness profile.
var serialSkewnessByFraction = map[PresymptomaticFraction]float64{
	Presymptomatic1:  30,
	Presymptomatic15: 1.95,
	Presymptomatic30: 0.7,
}

// delayParamsByChoice maps the isolation-delay selector to the Weibull
// parameters of the onset-to-isolation delay distribution.
var delayParamsByChoice = map[IsolationDelay]weibullParams{
	IsolationDelayShort: {shape: 1.6515, scale: 4.2878},
	IsolationDelayLong:  {shape: 2.3052, scale: 9.4839},
}

// Config holds all epidemiological and distribution parameters of one
// scenario. It is created once by NewConfig, immutable afterwards, and shared
// by reference with every Case and Realization.
type Config struct {
	Horizon         float64                // simulation horizon T; no infection after this time is retained
	ControlStart    float64                // start of the window used to judge "outbreak still active"
	InitialCases    int                    // number of untraced seed cases at time 0
	Rho             float64                // probability an infection is contact-traced, in [0,1]
	R0              float64                // basic reproduction number
	SubclinicalProb float64                // probability a case is subclinical, in [0,1]
	Presymptomatic  PresymptomaticFraction // selects serial-interval skewness
	Delay           IsolationDelay         // selects the onset-to-isolation delay distribution

	// Derived at construction, fixed thereafter.
	P              float64 // negative-binomial success probability: Dispersion / (Dispersion + R0)
	SerialSkewness float64 // skew-normal skewness for serial intervals
	DelayShape     float64 // Weibull shape for onset-to-isolation delay
	DelayScale     float64 // Weibull scale for onset-to-isolation delay
}

// NewConfig validates the raw scenario inputs and returns a fully-populated,
// immutable Config. There is no partially-derived intermediate state: the
// first validation failure aborts construction before any simulation work.
func NewConfig(horizon, controlStart float64, initialCases int, rho, r0, subclinicalProb float64,
	presymptomatic PresymptomaticFraction, delay IsolationDelay) (*Config, error) {
	skewness, ok := serialSkewnessByFraction[presymptomatic]
	if !ok {
		return nil, fmt.Errorf("unknown transmission_before_symptoms_percentage %d; valid: 1, 15, 30", presymptomatic)
	}
	delayParams, ok := delayParamsByChoice[delay]
	if !ok {
		return nil, fmt.Errorf("unknown onset_to_isolation %q; valid: short, long", delay)
	}
	if horizon < 0 {
		return nil, fmt.Errorf("horizon must be non-negative, got %f", horizon)
	}
	if initialCases < 1 {
		return nil, fmt.Errorf("initial_cases must be at least 1, got %d", initialCases)
	}
	if rho < 0 || rho > 1 {
		return nil, fmt.Errorf("rho must be in [0,1], got %f", rho)
	}
	if r0 < 0 {
		return nil, fmt.Errorf("r_0 must be non-negative, got %f", r0)
	}
	if subclinicalProb < 0 || subclinicalProb > 1 {
		return nil, fmt.Errorf("subclinical_prob must be in [0,1], got %f", subclinicalProb)
	}

	return &Config{
		Horizon:         horizon,
		ControlStart:    controlStart,
		InitialCases:    initialCases,
		Rho:             rho,
		R0:              r0,
		SubclinicalProb: subclinicalProb,
		Presymptomatic:  presymptomatic,
		Delay:           delay,
		P:               Dispersion / (Dispersion + r0),
		SerialSkewness:  skewness,
		DelayShape:      delayParams.shape,
		DelayScale:      delayParams.scale,
	}, nil
}
