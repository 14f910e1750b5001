// Package analytics derives loan-monitoring summaries from customer and
// transaction collections.
//
// Every function here is pure: inputs are never modified, nothing is cached,
// and empty input yields zero or empty results rather than an error. Callers
// that aggregate repeatedly over the same customer can pre-index transactions
// (see store.Store.TransactionsFor) and pass the smaller slice in; the result
// is the same.
package analytics
