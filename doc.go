// Package folio computes the figures of a personal portfolio dashboard from
// two inputs: a CSV file of purchase lots and a JSON snapshot of current
// prices.
//
// The core functionalities include:
//   - Record normalization: tolerant decoding of the transactions CSV into
//     typed Transactions (quoted fields, currency noise, parenthesized
//     negatives).
//   - Valuation: pricing every lot against the price snapshot, with a
//     diagnostic list of the lots that could not be priced.
//   - Aggregation: folding priced lots by ticker or by month, with weights
//     and contributions to the total gain.
//   - Money-weighted return: a bounded bisection solver for the internal rate
//     of return of the monthly contributions.
//
// Everything downstream of Load is pure and synchronous: ComputeDashboard
// recomputes a complete DashboardResult from its inputs on every call.
package folio
