package input

// maxHistory bounds the remembered queries.
const maxHistory = 50

// history is a bounded list of submitted queries with a browse cursor.
// cursor == len(entries) means the user is editing a fresh query, saved in
// draft while browsing.
type history struct {
	entries []string
	cursor  int
	draft   string
}

// add records query and ends browsing. Consecutive repeats are stored once.
func (h *history) add(query string) {
	if query == "" {
		return
	}
	if n := len(h.entries); n == 0 || h.entries[n-1] != query {
		h.entries = append(h.entries, query)
		if over := len(h.entries) - maxHistory; over > 0 {
			h.entries = h.entries[over:]
		}
	}
	h.rewind()
}

// back steps to the previous entry. current is the text being edited, kept
// as the draft when browsing starts. ok is false at the oldest entry.
func (h *history) back(current string) (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// forward steps toward the newest entry, returning the draft past the end.
func (h *history) forward() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

func (h *history) rewind() {
	h.cursor = len(h.entries)
	h.draft = ""
}
