package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/hisaabi_reports/internal/dto"
	"github.com/SscSPs/hisaabi_reports/internal/repositories/database/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStore writes a one sale ledger to a fresh SQLite file and points the
// configuration at it.
func seedStore(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`INSERT INTO businesses (business_id, title, currency_symbol) VALUES ('shop', 'Shop', 'Rs')`,
		`INSERT INTO parties (party_id, business_id, name, role, opening_balance, balance) VALUES ('alice', 'shop', 'Alice', 0, '100', '250')`,
		`INSERT INTO payment_methods (payment_method_id, business_id, title, amount, opening_amount) VALUES ('cash', 'shop', 'Cash', '50', '0')`,
	}
	for _, stmt := range stmts {
		_, err := db.Conn().Exec(stmt)
		require.NoError(t, err)
	}
	_, err = db.Conn().Exec(`INSERT INTO transactions (transaction_id, business_id, party_id, transaction_type, total_bill, total_paid,
		payment_method_to_id, transaction_ts) VALUES ('t1', 'shop', 'alice', 1, '200', '50', 'cash', ?)`,
		time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC).UnixMilli())
	require.NoError(t, err)

	t.Setenv("DATA_SOURCE", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("REPORT_TIMEZONE", "UTC")
}

// execute runs reportctl with args, resetting flags left over from earlier runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range []*cobra.Command{generateCmd, catalogueCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogueCommand(t *testing.T) {
	out, err := execute(t, "catalogue", "--json")
	require.NoError(t, err)

	var entries []dto.CatalogueEntryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 17)
	assert.Equal(t, "Sale Report", entries[0].Title)
}

func TestGenerateCommand_CustomerLedgerJSON(t *testing.T) {
	seedStore(t)

	out, err := execute(t, "generate", "-b", "shop", "-t", "9", "-f", "20", "--party", "alice", "-d", "all_time", "--json")
	require.NoError(t, err)

	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Customer Report", resp.Title)
	require.Len(t, resp.Rows, 1)
	assert.Contains(t, resp.Rows[0].Values, "Sale")
	assert.Contains(t, resp.Rows[0].Values, "Rs 200.00")
}

func TestGenerateCommand_TableOutput(t *testing.T) {
	seedStore(t)

	out, err := execute(t, "generate", "-b", "shop", "-t", "9", "-f", "20", "--party", "alice", "--from", "2024-03-01", "--to", "2024-03-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer Report (Ledger)")
	assert.Contains(t, out, "Rs 200.00")
}

func TestGenerateCommand_MissingSelection(t *testing.T) {
	seedStore(t)

	_, err := execute(t, "generate", "-b", "shop", "-t", "9", "-f", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selectedPartyID")
}

func TestGenerateCommand_InvalidFlags(t *testing.T) {
	_, err := execute(t, "generate", "-b", "shop", "-t", "1", "-d", "someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags")
}
