// Package delta detects and fixes structural drift between product
// components and their evolving types.
//
// Compute walks a component in a fixed order: the component type and the
// generation count first, then the values and links stored on the component,
// then each generation by valid-from date, then link placement across the
// component/generation split, and finally the links inherited from a
// template. Unresolvable names become MissingTypeEntry values instead of
// errors, so one broken reference never aborts the scan.
//
//	d := delta.Compute(cmpt, searchPath)
//	for _, e := range d.Entries() {
//		fmt.Println(e.Type(), delta.Describe(e))
//	}
//	d.FixAll()
//
// Every fix re-checks its condition when applied, so the fixes of one delta
// may run in any order and a second run of the same fix does nothing.
package delta
