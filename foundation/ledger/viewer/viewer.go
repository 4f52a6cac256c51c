// Package viewer renders human readable block reports and provides a
// display sink that writes them to disk and surfaces them to the operator.
package viewer

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"go.uber.org/zap"
)

// unitsPerToken is the number of smallest units that make one token.
const unitsPerToken = 1_000_000_000

// RenderBlock produces the full human readable report for a block: header
// fields, per-transaction detail, aggregate totals and the serialized form.
func RenderBlock(block database.Block) string {
	var b strings.Builder

	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "                    BLOCK #%d DISPLAY\n", block.Header.Height)
	fmt.Fprintf(&b, "%s\n", rule)

	b.WriteString("\nBLOCK HEADER:\n")
	fmt.Fprintf(&b, "   Height: %d\n", block.Header.Height)
	fmt.Fprintf(&b, "   Parent Hash: %s\n", block.Header.ParentHash)
	fmt.Fprintf(&b, "   Merkle Root: %s\n", block.Header.TransRoot)
	fmt.Fprintf(&b, "   Timestamp: %s\n", block.Header.TimeStamp)
	fmt.Fprintf(&b, "   Difficulty: %d\n", block.Header.Difficulty)
	fmt.Fprintf(&b, "   Nonce: %d\n", block.Header.Nonce)
	fmt.Fprintf(&b, "   Block Hash: %s\n", block.Hash())

	if len(block.Transactions) == 0 {
		b.WriteString("\nTRANSACTIONS:\n")
		b.WriteString("   [GENESIS BLOCK - No transactions]\n")
	} else {
		b.WriteString("\nTRANSACTION DETAILS:\n")
		for i, tx := range block.Transactions {
			fmt.Fprintf(&b, "   \n   Transaction #%d\n", i+1)
			fmt.Fprintf(&b, "   - ID: %s\n", tx.ID)
			fmt.Fprintf(&b, "   - Sender: %s\n", tx.Sender)
			fmt.Fprintf(&b, "   - Recipient: %s\n", tx.Recipient)
			fmt.Fprintf(&b, "   - Amount: %d units (%.3f tokens)\n", tx.Amount, float64(tx.Amount)/unitsPerToken)
			fmt.Fprintf(&b, "   - Fee: %d units (%.3f tokens)\n", tx.Fee, float64(tx.Fee)/unitsPerToken)
			fmt.Fprintf(&b, "   - Nonce: %d\n", tx.Nonce)
			fmt.Fprintf(&b, "   - Timestamp: %s\n", tx.TimeStamp)
			fmt.Fprintf(&b, "   - Signature: %s\n", tx.Signature)
		}
	}

	var totalAmount, totalFees uint64
	for _, tx := range block.Transactions {
		totalAmount += tx.Amount
		totalFees += tx.Fee
	}

	doc, err := json.MarshalIndent(block, "", "  ")
	if err != nil {
		doc = []byte(fmt.Sprintf("   [ERROR] Failed to serialize: %s", err))
	}

	b.WriteString("\nBLOCK STATISTICS:\n")
	fmt.Fprintf(&b, "   Total Transactions: %d\n", len(block.Transactions))
	fmt.Fprintf(&b, "   Total Amount Transferred: %d units (%.3f tokens)\n", totalAmount, float64(totalAmount)/unitsPerToken)
	fmt.Fprintf(&b, "   Total Fees Collected: %d units (%.3f tokens)\n", totalFees, float64(totalFees)/unitsPerToken)
	fmt.Fprintf(&b, "   Block Size (JSON): %d bytes\n", len(doc))

	b.WriteString("\nSERIALIZED BLOCK (JSON):\n")
	fmt.Fprintf(&b, "%s\n", doc)

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "                   END BLOCK #%d DISPLAY\n", block.Header.Height)
	fmt.Fprintf(&b, "%s\n", rule)

	return b.String()
}

// NewTerminalSink returns a display function that writes the report to the
// named artifact under dir and, when open is set, makes a best effort
// attempt to surface it in the operator's terminal or viewer. Every failure
// is logged and returned; callers treat the whole operation as fire and
// forget.
func NewTerminalSink(dir string, open bool, log *zap.SugaredLogger) func(artifact string, report string) error {
	return func(artifact string, report string) error {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Errorw("display", "status", "create directory", "ERROR", err)
			return err
		}

		path := filepath.Join(dir, artifact)
		if err := os.WriteFile(path, []byte(report), 0644); err != nil {
			log.Errorw("display", "status", "write artifact", "ERROR", err)
			return err
		}

		log.Infow("display", "status", "artifact written", "path", path)

		if !open {
			return nil
		}

		if err := openViewer(path); err != nil {
			log.Errorw("display", "status", "open viewer", "ERROR", err)
			return err
		}

		return nil
	}
}

// openViewer spawns the platform's viewer for the artifact and does not wait
// for it to exit.
func openViewer(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "cmd", "/k", "type "+path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
