// Package drivers holds the concrete expected-case drivers.
//
// Each driver is parameterised over a fixed list of parameter classes and
// persists one result per (probe, case) its guards admit. Probe names are the
// keys consumers load results by, e.g. "Arma.toeplitz" or "Mat.rowsPlus".
//
//	for _, d := range drivers.All() {
//		if _, err := d.Run(ctx, env); err != nil {
//			return err
//		}
//	}
package drivers
