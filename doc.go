// Package rentvest projects the long term outcome of buying residential
// properties with a mortgage, alone or as a portfolio sharing a single pool
// of cash.
//
// The core functionalities include:
//   - Loans: amortization formulas for principal and interest and for interest
//     only loans, with extra monthly repayments.
//   - Properties: a month by month simulation of the loan, the offset account
//     and the out of pocket expenses for the owner-occupied, buy-to-let and
//     convert strategies.
//   - Portfolios: several properties bought at different years, household
//     savings pooled into the offset accounts, and deposits funded from the
//     usable equity of the properties already held.
//   - Reports: year by year series and a comparison against an index fund,
//     in JSON or queried with JSONPath.
//
// All amounts are in a single currency, rates are annual percentages and
// periods are whole months or years counted from the purchase.
//
// This package serves as the foundational logic for the `rvs` command-line
// tool.
package rentvest
