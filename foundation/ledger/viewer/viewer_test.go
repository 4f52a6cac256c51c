package viewer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"github.com/ledgermint/ledgermint/foundation/ledger/database/transroot"
	"github.com/ledgermint/ledgermint/foundation/ledger/signature"
	"github.com/ledgermint/ledgermint/foundation/ledger/viewer"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_RenderBlock(t *testing.T) {
	t.Log("Given the need to render human readable block reports.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen rendering a genesis block.", testID)
		{
			rootFn, err := transroot.Retrieve(transroot.StrategyPlaceholder)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to retrieve the root strategy: %v", failed, testID, err)
			}

			block, err := database.NewBlock(0, signature.ZeroHash, nil, 0, rootFn)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to build the block: %v", failed, testID, err)
			}

			report := viewer.RenderBlock(block)

			for _, want := range []string{
				"BLOCK #0 DISPLAY",
				"[GENESIS BLOCK - No transactions]",
				signature.ZeroHash,
				"Total Transactions: 0",
				"SERIALIZED BLOCK (JSON):",
				"END BLOCK #0 DISPLAY",
			} {
				if !strings.Contains(report, want) {
					t.Fatalf("\t%s\tTest %d:\tShould contain %q in the report.", failed, testID, want)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould render the genesis report.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen rendering a block with transactions.", testID)
		{
			tx := database.Tx{
				Sender:    "alice",
				Recipient: "bob",
				Amount:    2_500_000_000,
				Fee:       database.TxFee,
				Nonce:     1,
				TimeStamp: time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC),
				Signature: "deadbeef",
			}
			tx.ID = tx.Hash()

			rootFn, err := transroot.Retrieve(transroot.StrategyPlaceholder)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to retrieve the root strategy: %v", failed, testID, err)
			}

			parent, err := database.NewBlock(0, signature.ZeroHash, nil, 0, rootFn)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to build the parent: %v", failed, testID, err)
			}

			block, err := database.NewBlock(1, parent.Hash(), []database.Tx{tx}, 0, rootFn)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to build the block: %v", failed, testID, err)
			}

			report := viewer.RenderBlock(block)

			for _, want := range []string{
				"BLOCK #1 DISPLAY",
				"Transaction #1",
				"- Sender: alice",
				"- Recipient: bob",
				"2500000000 units (2.500 tokens)",
				"Total Transactions: 1",
				"Total Fees Collected: 1000000 units",
			} {
				if !strings.Contains(report, want) {
					t.Fatalf("\t%s\tTest %d:\tShould contain %q in the report.", failed, testID, want)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould render the transaction detail and totals.", success, testID)

			if strings.Contains(report, "[GENESIS BLOCK") {
				t.Fatalf("\t%s\tTest %d:\tShould not contain the genesis marker.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not contain the genesis marker.", success, testID)
		}
	}
}

func Test_TerminalSink(t *testing.T) {
	t.Log("Given the need to write block reports to disk.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen writing an artifact into a fresh folder.", testID)
		{
			dir := filepath.Join(t.TempDir(), "display")

			sink := viewer.NewTerminalSink(dir, false, zap.NewNop().Sugar())

			if err := sink("block_0_display.txt", "the report"); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the artifact: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to write the artifact.", success, testID)

			data, err := os.ReadFile(filepath.Join(dir, "block_0_display.txt"))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to read the artifact back: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to read the artifact back.", success, testID)

			if string(data) != "the report" {
				t.Fatalf("\t%s\tTest %d:\tShould get back the exact report, got %q.", failed, testID, data)
			}
			t.Logf("\t%s\tTest %d:\tShould get back the exact report.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen the folder cannot be created.", testID)
		{
			blocker := filepath.Join(t.TempDir(), "blocker")
			if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to write the file: %v", failed, testID, err)
			}

			sink := viewer.NewTerminalSink(filepath.Join(blocker, "display"), false, zap.NewNop().Sugar())

			if err := sink("block_0_display.txt", "the report"); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould not be able to write under a file.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not be able to write under a file.", success, testID)
		}
	}
}
