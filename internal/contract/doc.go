// Package contract implements the clause language and compiler that turn a
// contract template into a spending policy.
//
// A Contract exposes two kinds of spend paths:
//
//   - Guards (finish paths): a named Clause that, once satisfied, spends the
//     coin freely.
//   - Transitions (then paths): a guard Clause plus a Template of outputs the
//     spend is committed to via CHECKTEMPLATEVERIFY. Outputs may themselves be
//     contracts, which Compile expands recursively.
//
// Compile ORs every path together, rewrites the result into disjunctive form
// (Branches) and renders one script branch per conjunction.
package contract
