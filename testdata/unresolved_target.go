// Negative conformance fixture, kept under testdata/ so the toolchain never
// builds it as part of the module. A transition target is an ordinary
// identifier, so compiling this file fails with
//
//	undefined: stMissing
//
// at build time; an unresolved target can never survive to runtime.
package fixture

import "github.com/rdentato/fsm"

type datum struct{}

func stEntry(d *datum) fsm.State[*datum] {
	return stMissing // no state of this name is declared anywhere
}
