// Package biomarket provides the types and functions for running a small,
// single-user retail inventory and sales tracker. It is local-first: every
// piece of state lives in plain CSV files in a working directory and every
// mutation is persisted immediately.
//
// The core functionalities include:
//   - Record Store: generic read-all / write-all / append persistence of
//     fixed-schema records to named table files, with header management.
//   - Inventory Ledger: per-warehouse product tables with merge-on-add
//     semantics and a never-negative quantity invariant, rewritten in full on
//     every mutation.
//   - Sales Journal: an append-only record of completed sales with per-sale
//     profit computed and stored at sale time, and aggregate profit queries.
//
// A sale is two sequential, independently-failing steps: decrement the stock,
// then append the journal row. There is no cross-file transaction and no
// locking; the single-user assumption is part of the design.
//
// This package serves as the foundational logic for the `bms` command-line
// tool.
package biomarket
