package state

import (
	"fmt"

	"github.com/ledgermint/ledgermint/foundation/ledger/database"
	"github.com/ledgermint/ledgermint/foundation/ledger/viewer"
)

// DisplayBlock requests a one-shot human readable rendering of the block be
// written to a named artifact and optionally surfaced to the operator. No
// return value is consumed: a failure to produce the artifact is logged and
// never affects chain or pool state.
func (s *State) DisplayBlock(block database.Block) {
	if s.display == nil {
		return
	}

	artifact := fmt.Sprintf("block_%d_display.txt", block.Header.Height)

	if err := s.display(artifact, viewer.RenderBlock(block)); err != nil {
		s.evHandler("state: DisplayBlock: WARNING: %s", err)
	}
}
