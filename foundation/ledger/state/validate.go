package state

// Validate re-walks the chain from the block after genesis, checking parent
// hash linkage and difficulty satisfaction for every block. Transaction
// roots are not recomputed and signatures are not re-verified. The check is
// structural only.
func (s *State) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 1; i < len(s.chain); i++ {
		if err := s.chain[i].ValidateBlock(s.chain[i-1], s.evHandler); err != nil {
			s.evHandler("state: Validate: chain invalid: %s", err)
			return false
		}
	}

	return true
}
