// Package percentile maps salary values to percentile ranks under a normal
// market-salary model.
package percentile

import "gonum.org/v1/gonum/stat/distuv"

// Rank returns the percentile rank (0-100) of salary v under a normal
// distribution with mean mu and standard deviation sigma.
// Precondition: sigma > 0. Callers validate sigma before reaching here; the
// analyzers reject zero-sigma rows at load and analysis time.
func Rank(v, mu, sigma float64) float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	return dist.CDF(v) * 100
}

// RankAtRatio returns the percentile rank of a cap set at ratio*mu, e.g.
// RankAtRatio(0.90, mu, sigma) for a cap at 90% of the market midpoint.
func RankAtRatio(ratio, mu, sigma float64) float64 {
	return Rank(ratio*mu, mu, sigma)
}

// Density returns the normal probability density at salary v. Used by the
// plot renderer to sample the curve over [mu-4*sigma, mu+4*sigma].
func Density(v, mu, sigma float64) float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	return dist.Prob(v)
}
