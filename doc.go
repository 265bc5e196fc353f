// Package xirr computes the money-weighted annualized rate of return (XIRR)
// for brokerage transactions in a single ticker, optionally blending in
// option-contract activity on the same underlying.
//
// The package turns a validated transaction table plus a current price table
// into a dated cash-flow series, closes the series with a mark-to-market
// terminal value, and solves for the rate that zeroes its net present value.
// An undefined rate (too few flows, all flows on the same side, no converging
// seed) is a normal outcome, reported with an ok=false result rather than an
// error.
//
// The CLI lives in the cmd package and the txr binary; markdown rendering of
// results lives in the renderer package.
package xirr
