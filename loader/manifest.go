package loader

// Wrapped library names.
const (
	Mlfinlab     = "mlfinlab"
	Arbitragelab = "arbitragelab"
)

// Manifest declares the public submodules a wrapped library must provide.
// A library whose resolved submodule table is missing any declared name is
// treated as unavailable as a whole, so the availability flag and the
// namespace contents always agree.
type Manifest struct {
	Library    string
	Submodules []string

	// Aliases maps a submodule name to the name it is bound under in the
	// unified namespace. Collisions between the two libraries are resolved
	// here rather than by lookup-time disambiguation.
	Aliases map[string]string

	// Extras names the optional heavier numerical add-on groups the library
	// publishes. They are packaging metadata surfaced for introspection and
	// carry no loading behavior.
	Extras map[string][]string
}

// BoundName returns the namespace name a submodule is bound under.
func (m Manifest) BoundName(submodule string) string {
	if alias, ok := m.Aliases[submodule]; ok {
		return alias
	}
	return submodule
}

// MlfinlabManifest declares the public surface of the financial machine
// learning library.
func MlfinlabManifest() Manifest {
	return Manifest{
		Library: Mlfinlab,
		Submodules: []string{
			"cross_validation",
			"data_structures",
			"filters",
			"labeling",
			"features",
			"sample_weights",
			"sampling",
			"bet_sizing",
			"feature_importance",
			"ensemble",
			"multi_product",
			"multi_asset_estimators",
			"portfolio_optimisation",
			"util",
		},
		Extras: map[string][]string{
			"heavy": {"portfolio_optimisation", "feature_importance"},
		},
	}
}

// ArbitragelabManifest declares the public surface of the statistical
// arbitrage library. Its util submodule is bound as arb_util so it never
// shadows the mlfinlab util submodule.
func ArbitragelabManifest() Manifest {
	return Manifest{
		Library: Arbitragelab,
		Submodules: []string{
			"codependence",
			"cointegration_approach",
			"copula_approach",
			"distance_approach",
			"hedge_ratios",
			"ml_approach",
			"optimal_mean_reversion",
			"other_approaches",
			"spread_selection",
			"stochastic_control_approach",
			"tearsheet",
			"time_series_approach",
			"trading",
			"util",
		},
		Aliases: map[string]string{
			"util": "arb_util",
		},
		Extras: map[string][]string{
			"heavy": {"copula_approach", "stochastic_control_approach"},
		},
	}
}

// Manifests returns the manifests of both wrapped libraries in resolution
// order.
func Manifests() []Manifest {
	return []Manifest{MlfinlabManifest(), ArbitragelabManifest()}
}
