package engine

// HistoryWindow is how many ledger entries a snapshot retains. Entries are
// trimmed by count, so days without activity do not use up the window.
const HistoryWindow = 30

// recordExp returns a copy of history with gained/lost added to the entry
// for date, appending a new entry if none exists, trimmed to HistoryWindow.
func recordExp(history []LedgerEntry, date string, gained int, lost int) []LedgerEntry {
	out := make([]LedgerEntry, len(history), len(history)+1)
	copy(out, history)

	found := false
	for i := range out {
		if out[i].Date == date {
			out[i].Gained += gained
			out[i].Lost += lost
			found = true
			break
		}
	}
	if !found {
		out = append(out, LedgerEntry{Date: date, Gained: gained, Lost: lost})
	}

	if len(out) > HistoryWindow {
		out = out[len(out)-HistoryWindow:]
	}
	return out
}

// LedgerFor returns the ledger entry for date, zero-valued if absent.
func (s PlayerState) LedgerFor(date string) LedgerEntry {
	for _, e := range s.ExpHistory {
		if e.Date == date {
			return e
		}
	}
	return LedgerEntry{Date: date}
}
