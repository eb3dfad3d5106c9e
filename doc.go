// Package theta provides the position accounting engine behind the
// `thetactl` command-line tool: it turns a chronological stream of options
// trades into profitability reports.
//
// The core functionalities include:
//   - Canonical Trade Record: a broker-independent representation of a single
//     fill, with exact decimal money values.
//   - Sign Rules: the single table mapping a trade's (instruction, kind,
//     effect) classification to its open-interest and profit deltas.
//   - Contract Accounting: replaying one option contract's trades into a
//     settlement chain with realized profit and residual open interest.
//   - Symbol Grids: a trade-by-trade audit trail of how long/short call/put
//     interest and realized profit evolved for one underlying.
//   - Aggregation: per-symbol and grand totals across an account's history.
//
// The engine is a pure transformation: it performs no I/O, owns its running
// state per invocation, and leaves all rendering to the caller.
package theta
