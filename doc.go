// Package bursar maintains a durable record of accounts and their
// transactions for a small organization's treasury paperwork: incomes,
// expenses, processor fees, and the imports that feed them.
//
// The core functionalities include:
//   - Exact money arithmetic: amounts are arbitrary-precision rationals, no
//     floating point ever reaches storage. Display rounding ceils to cents.
//   - Ledger persistence: the whole ledger is one JSON document, loaded and
//     saved as a unit.
//   - Account registry and balances: named accounts with opening balances and
//     date-ordered transaction journals.
//   - Import deduplication: every imported record gets a content-addressed id
//     so re-running an import never duplicates a transaction.
//   - Format importers: DonorBox and OpenCollective donation exports, Stripe
//     and PayPal payout exports, each normalized into transactions and fees
//     routed to the right account (see the donations and payouts packages).
//   - Export: the ledger flattened into a single accountant-friendly CSV.
//
// This package is the foundational logic for the `bsr` command-line tool.
package bursar
