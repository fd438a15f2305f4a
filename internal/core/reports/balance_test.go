package reports_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardLedger_SingleSale(t *testing.T) {
	window := []domain.Transaction{txnAt("t1", domain.Sale, day(2024, 3, 5), "200", "50")}

	ledger := reports.ForwardLedger(dec("100"), nil, window, reports.PartyEffect(domain.RoleClassCustomer))

	assertDecimal(t, "100", ledger.Opening)
	assertDecimal(t, "250", ledger.Closing)
	assertDecimal(t, "150", ledger.TotalDebit)
	assertDecimal(t, "0", ledger.TotalCredit)
	require.Len(t, ledger.Entries, 1)
	assertDecimal(t, "250", ledger.Entries[0].Balance)
}

func TestForwardLedger_RollsPriorIntoOpening(t *testing.T) {
	prior := []domain.Transaction{
		txnAt("p1", domain.Sale, day(2024, 1, 5), "300", "0"),
		txnAt("p2", domain.GetFromCustomer, day(2024, 1, 20), "0", "120"),
	}
	window := []domain.Transaction{
		txnAt("w2", domain.GetFromCustomer, day(2024, 2, 10), "0", "80"),
		txnAt("w1", domain.Sale, day(2024, 2, 3), "100", "40"),
	}

	ledger := reports.ForwardLedger(dec("10"), prior, window, reports.PartyEffect(domain.RoleClassCustomer))

	assertDecimal(t, "190", ledger.Opening)
	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, "w1", ledger.Entries[0].Transaction.TransactionID, "entries are computed in ascending time")
	assertDecimal(t, "250", ledger.Entries[0].Balance)
	assertDecimal(t, "170", ledger.Entries[1].Balance)
	assertDecimal(t, "170", ledger.Closing)
	assert.Equal(t, "w2", ledger.NewestFirst()[0].Transaction.TransactionID)
}

func TestLedger_TieOut(t *testing.T) {
	window := []domain.Transaction{
		txnAt("a", domain.Purchase, day(2024, 4, 1), "500", "100"),
		txnAt("b", domain.PayToVendor, day(2024, 4, 2), "0", "250"),
		txnAt("c", domain.VendorReturn, day(2024, 4, 3), "60", "0"),
		txnAt("d", domain.GetFromVendor, day(2024, 4, 4), "0", "15"),
	}

	ledger := reports.ForwardLedger(dec("-40"), nil, window, reports.PartyEffect(domain.RoleClassVendor))

	assert.True(t, ledger.Closing.Equal(ledger.Opening.Add(ledger.TotalDebit).Sub(ledger.TotalCredit)))
	for _, e := range ledger.Entries {
		assert.True(t, e.Debit.IsZero() || e.Credit.IsZero(), "an entry is either debit or credit")
	}
}

func TestBackwardCashFlow_CashInHandExample(t *testing.T) {
	scope := reports.NewCashScope("cash")
	txn := domain.Transaction{
		TransactionID:     "t1",
		Type:              domain.GetFromCustomer,
		TotalPaid:         dec("100"),
		PaymentMethodToID: strPtr("cash"),
		Timestamp:         day(2024, 3, 10),
	}

	flow := reports.BackwardCashFlow(dec("500"), nil, []domain.Transaction{txn}, scope.Effect)

	require.Len(t, flow.Entries, 1)
	assertDecimal(t, "400", flow.Entries[0].Previous)
	assertDecimal(t, "500", flow.Entries[0].Ending)
	assertDecimal(t, "400", flow.Opening)
	assertDecimal(t, "500", flow.Closing)
}

func TestBackwardCashFlow_NewestFirst(t *testing.T) {
	window := []domain.Transaction{
		txnAt("old", domain.Sale, day(2024, 3, 1), "100", "0"),
		txnAt("new", domain.GetFromCustomer, day(2024, 3, 9), "0", "30"),
	}

	flow := reports.BackwardCashFlow(dec("70"), nil, window, reports.PartyEffect(domain.RoleClassCustomer))

	require.Len(t, flow.Entries, 2)
	assert.Equal(t, "new", flow.Entries[0].Transaction.TransactionID)
	assertDecimal(t, "100", flow.Entries[0].Previous)
	assertDecimal(t, "0", flow.Entries[1].Previous)
	assert.True(t, flow.Entries[0].Previous.Equal(flow.Entries[1].Ending), "previous of a row is the ending of the older row")
}

func TestForwardAndBackwardAgree(t *testing.T) {
	effect := reports.PartyEffect(domain.RoleClassCustomer)
	opening := dec("75")
	prior := []domain.Transaction{
		txnAt("p1", domain.Sale, day(2024, 1, 3), "400", "100"),
		txnAt("p2", domain.GetFromCustomer, day(2024, 1, 15), "0", "200"),
	}
	window := []domain.Transaction{
		txnAt("w1", domain.Sale, day(2024, 2, 2), "250", "50"),
		txnAt("w2", domain.CustomerReturn, day(2024, 2, 8), "40", "0"),
		txnAt("w3", domain.PayToCustomer, day(2024, 2, 8), "0", "10"),
		txnAt("w4", domain.GetFromCustomer, day(2024, 2, 20), "0", "90"),
	}
	after := []domain.Transaction{
		txnAt("a1", domain.Sale, day(2024, 3, 2), "60", "0"),
	}

	current := opening
	for _, group := range [][]domain.Transaction{prior, window, after} {
		for _, txn := range group {
			current = current.Add(effect(txn))
		}
	}

	forward := reports.ForwardLedger(opening, prior, window, effect)
	backward := reports.BackwardCashFlow(current, after, window, effect)

	assert.True(t, forward.Closing.Equal(backward.Closing), "closing: forward %s, backward %s", forward.Closing, backward.Closing)
	assert.True(t, forward.Opening.Equal(backward.Opening), "opening: forward %s, backward %s", forward.Opening, backward.Opening)
	assert.True(t, forward.TotalDebit.Equal(backward.TotalDebit))
	assert.True(t, forward.TotalCredit.Equal(backward.TotalCredit))
}

func TestSortedAscending_TiesBrokenByID(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{TransactionID: "b", Timestamp: at},
		{TransactionID: "a", Timestamp: at},
		{TransactionID: "c", Timestamp: at.Add(-time.Hour)},
	}

	asc := reports.SortedAscending(txns)
	desc := reports.SortedDescending(txns)

	assert.Equal(t, []string{"c", "a", "b"}, domain.TransactionIDs(asc))
	assert.Equal(t, []string{"b", "a", "c"}, domain.TransactionIDs(desc))
	assert.Equal(t, "b", txns[0].TransactionID, "input is not reordered")
}

func TestSplitDebitCredit(t *testing.T) {
	d, c := reports.SplitDebitCredit(dec("12.5"))
	assertDecimal(t, "12.5", d)
	assertDecimal(t, "0", c)

	d, c = reports.SplitDebitCredit(dec("-7"))
	assertDecimal(t, "0", d)
	assertDecimal(t, "7", c)
}
