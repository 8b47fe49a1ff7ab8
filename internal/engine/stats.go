package engine

// Stats counts quests by resolution state.
type Stats struct {
	Active    int
	Completed int
	Failed    int
}

// Resolved is the number of terminal quests.
func (s Stats) Resolved() int { return s.Completed + s.Failed }

// SuccessRate is completed / resolved in [0,1]; 0 when nothing is resolved.
func (s Stats) SuccessRate() float64 {
	if s.Resolved() == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Resolved())
}

func ComputeStats(s PlayerState) Stats {
	var st Stats
	for _, q := range s.Quests {
		switch q.Status() {
		case QuestCompleted:
			st.Completed++
		case QuestFailed:
			st.Failed++
		default:
			st.Active++
		}
	}
	return st
}

// LedgerDay is a ledger entry with its net EXP change.
type LedgerDay struct {
	Date   string
	Gained int
	Lost   int
	Net    int
}

// RecentLedger returns up to n of the most recently written ledger entries,
// oldest first.
func RecentLedger(s PlayerState, n int) []LedgerDay {
	if n <= 0 {
		return nil
	}
	entries := s.ExpHistory
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]LedgerDay, 0, len(entries))
	for _, e := range entries {
		out = append(out, LedgerDay{Date: e.Date, Gained: e.Gained, Lost: e.Lost, Net: e.Gained - e.Lost})
	}
	return out
}

// ActiveQuests returns unresolved quests in list order.
func ActiveQuests(s PlayerState) []Quest {
	var out []Quest
	for _, q := range s.Quests {
		if !q.IsTerminal() {
			out = append(out, q)
		}
	}
	return out
}
