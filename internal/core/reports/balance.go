package reports

import (
	"sort"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EffectFunc returns the signed balance change of one transaction.
type EffectFunc func(domain.Transaction) decimal.Decimal

// PartyEffect binds BalanceEffect to a counterparty class.
func PartyEffect(class domain.RoleClass) EffectFunc {
	return func(txn domain.Transaction) decimal.Decimal {
		return BalanceEffect(txn, class)
	}
}

// SplitDebitCredit puts a positive effect in the debit column and the
// magnitude of anything else in the credit column.
func SplitDebitCredit(effect decimal.Decimal) (debit, credit decimal.Decimal) {
	if effect.IsPositive() {
		return effect, decimal.Zero
	}
	return decimal.Zero, effect.Abs()
}

// LedgerEntry is one transaction of a forward walk.
type LedgerEntry struct {
	Transaction domain.Transaction
	Effect      decimal.Decimal
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// Ledger is the result of a forward walk. Entries are in ascending time order.
type Ledger struct {
	Opening     decimal.Decimal
	Closing     decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Entries     []LedgerEntry
}

// NewestFirst returns the entries in display order.
func (l Ledger) NewestFirst() []LedgerEntry {
	out := make([]LedgerEntry, len(l.Entries))
	for i, e := range l.Entries {
		out[len(l.Entries)-1-i] = e
	}
	return out
}

// ForwardLedger starts at the stored opening balance, rolls it forward over every
// transaction before the window and then walks the window in ascending time,
// keeping a running balance per entry.
func ForwardLedger(openingBalance decimal.Decimal, prior, window []domain.Transaction, effect EffectFunc) Ledger {
	opening := openingBalance
	for _, txn := range prior {
		opening = opening.Add(effect(txn))
	}

	ledger := Ledger{
		Opening:     opening,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Entries:     make([]LedgerEntry, 0, len(window)),
	}
	running := opening
	for _, txn := range SortedAscending(window) {
		e := effect(txn)
		running = running.Add(e)
		debit, credit := SplitDebitCredit(e)
		ledger.TotalDebit = ledger.TotalDebit.Add(debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(credit)
		ledger.Entries = append(ledger.Entries, LedgerEntry{
			Transaction: txn,
			Effect:      e,
			Debit:       debit,
			Credit:      credit,
			Balance:     running,
		})
	}
	ledger.Closing = running
	return ledger
}

// CashFlowEntry is one transaction of a backward walk.
type CashFlowEntry struct {
	Transaction domain.Transaction
	Effect      decimal.Decimal
	Previous    decimal.Decimal
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Ending      decimal.Decimal
}

// CashFlow is the result of a backward walk. Entries are newest first.
type CashFlow struct {
	Opening     decimal.Decimal
	Closing     decimal.Decimal
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Entries     []CashFlowEntry
}

// BackwardCashFlow starts at the current cached balance, unwinds anything recorded
// after the window, then walks the window newest first deriving each previous
// balance as ending minus effect.
func BackwardCashFlow(current decimal.Decimal, after, window []domain.Transaction, effect EffectFunc) CashFlow {
	ending := current
	for _, txn := range after {
		ending = ending.Sub(effect(txn))
	}

	flow := CashFlow{
		Closing:     ending,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Entries:     make([]CashFlowEntry, 0, len(window)),
	}
	for _, txn := range SortedDescending(window) {
		e := effect(txn)
		previous := ending.Sub(e)
		debit, credit := SplitDebitCredit(e)
		flow.TotalDebit = flow.TotalDebit.Add(debit)
		flow.TotalCredit = flow.TotalCredit.Add(credit)
		flow.Entries = append(flow.Entries, CashFlowEntry{
			Transaction: txn,
			Effect:      e,
			Previous:    previous,
			Debit:       debit,
			Credit:      credit,
			Ending:      ending,
		})
		ending = previous
	}
	flow.Opening = ending
	return flow
}

// SortedAscending returns a copy ordered by timestamp, ties broken by id.
func SortedAscending(txns []domain.Transaction) []domain.Transaction {
	out := append([]domain.Transaction(nil), txns...)
	sort.SliceStable(out, func(i, j int) bool {
		return transactionLess(out[i], out[j])
	})
	return out
}

// SortedDescending returns a copy ordered newest first.
func SortedDescending(txns []domain.Transaction) []domain.Transaction {
	out := append([]domain.Transaction(nil), txns...)
	sort.SliceStable(out, func(i, j int) bool {
		return transactionLess(out[j], out[i])
	})
	return out
}

func transactionLess(a, b domain.Transaction) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.TransactionID < b.TransactionID
}
