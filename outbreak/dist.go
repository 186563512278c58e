// Distribution sampling for the branching process. Standard distributions
// come from gonum's stat/distuv; the negative binomial and skew normal are
// built here on top of it.

package outbreak

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// samplers bundles the distribution draws one realization consumes. All
// distributions share the realization's single RNG stream, so a realization's
// outcome is fully determined by its SimulationKey-derived seed.
type samplers struct {
	tracing     distuv.Bernoulli
	subclinical distuv.Bernoulli
	incubation  distuv.Weibull
	delay       distuv.Weibull
	offspring   negativeBinomial
	serial      skewNormal
}

func newSamplers(cfg *Config, rng *rand.Rand) *samplers {
	return &samplers{
		tracing:     distuv.Bernoulli{P: cfg.Rho, Src: rng},
		subclinical: distuv.Bernoulli{P: cfg.SubclinicalProb, Src: rng},
		incubation:  distuv.Weibull{K: IncubationShape, Lambda: IncubationScale, Src: rng},
		delay:       distuv.Weibull{K: cfg.DelayShape, Lambda: cfg.DelayScale, Src: rng},
		offspring:   negativeBinomial{r: Dispersion, p: cfg.P, src: rng},
		serial:      skewNormal{alpha: cfg.SerialSkewness, scale: SerialScale, src: rng},
	}
}

// negativeBinomial samples candidate secondary-case counts with dispersion r
// and success probability p, via the Gamma-Poisson mixture: a draw of
// Gamma(shape=r, rate=p/(1-p)) becomes the intensity of a Poisson draw.
// Mean is r(1-p)/p; small r gives the heavy right tail where most cases
// produce few secondary infections while a few produce many.
type negativeBinomial struct {
	r, p float64
	src  rand.Source
}

// Rand returns one draw. Never negative; k = 0 is a valid outcome.
func (nb negativeBinomial) Rand() int {
	if nb.p >= 1 {
		// Degenerate distribution: mean r(1-p)/p is zero.
		return 0
	}
	intensity := distuv.Gamma{Alpha: nb.r, Beta: nb.p / (1 - nb.p), Src: nb.src}.Rand()
	if intensity <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: intensity, Src: nb.src}.Rand())
}

// skewNormal samples serial intervals. The location parameter is supplied per
// draw because it is the infecting case's own incubation period, which
// couples the infectiousness profile to how long that case stayed
// pre-symptomatic.
type skewNormal struct {
	alpha float64 // skewness
	scale float64
	src   rand.Source
}

// Rand draws from SkewNormal(alpha, location, scale) using the conditioning
// construction: delta*|Z0| + sqrt(1-delta^2)*Z1 for iid standard normals Z0,
// Z1 and delta = alpha/sqrt(1+alpha^2).
func (sn skewNormal) Rand(location float64) float64 {
	std := distuv.Normal{Mu: 0, Sigma: 1, Src: sn.src}
	delta := sn.alpha / math.Sqrt(1+sn.alpha*sn.alpha)
	z0 := std.Rand()
	z1 := std.Rand()
	x := delta*math.Abs(z0) + math.Sqrt(1-delta*delta)*z1
	return location + sn.scale*x
}
