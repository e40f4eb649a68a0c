// Package myfinlab is a unified namespace for two independently versioned
// quant-finance libraries: mlfinlab (financial machine learning) and
// arbitragelab (statistical arbitrage and pairs trading).
//
// Neither library is required. At first use the package attempts to resolve
// each one, records the outcome, and re-exposes the submodules of every
// library that resolved. Callers branch on IsMlfinlabAvailable and
// IsArbitragelabAvailable instead of handling resolution failures:
//
//	if myfinlab.IsMlfinlabAvailable() {
//		m, _ := myfinlab.Module("labeling")
//		// use m.Handle exactly as the underlying library documents
//	}
//
// Submodules keep their original names; arbitragelab's util is bound as
// arb_util so it never shadows mlfinlab's util. Looking up a submodule of an
// unavailable library returns registry.ErrModuleNotFound. Errors raised by
// re-exported functionality pass through unchanged.
package myfinlab
