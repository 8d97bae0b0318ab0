// Package libcall teaches the optimizer what it may assume about calls to
// the C library.
//
// The rule table maps each libfunc.ID to declarative facts (memory effects,
// unwinding, capture and aliasing of arguments, allocation families). The
// Applier turns those facts into IR attributes on a declaration, the
// Resolver finds or creates declarations in a module and fixes up their
// ABI, and the CallBuilder emits typed calls on top of both.
//
// Functions a target does not provide, or whose name is already taken by an
// incompatible symbol, are reported with ErrUnavailable and leave the module
// unchanged. Misuse by the caller panics with *ContractViolation.
package libcall
