package store

import (
	"context"
	"os"
)

// Stats holds save statistics.
type Stats struct {
	DBPath            string `json:"db_path"`
	DBSizeBytes       int64  `json:"db_size_bytes"`
	Day               int    `json:"day"`
	EventsSeen        int    `json:"events_seen"`
	MailReceived      int    `json:"mail_received"`
	ResponsesAnswered int    `json:"responses_answered"`
	MailForTomorrow   int    `json:"mail_for_tomorrow"`
	ManualRepeaters   int    `json:"manual_repeaters"`
	CurrentEvent      string `json:"current_event,omitempty"`
}

// Stats returns save statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	counts := []struct {
		table string
		dst   *int
	}{
		{tblEventsSeen, &st.EventsSeen},
		{tblMailReceived, &st.MailReceived},
		{tblResponses, &st.ResponsesAnswered},
		{tblMailTomorrow, &st.MailForTomorrow},
		{tblManualRepeaters, &st.ManualRepeaters},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+c.table).Scan(c.dst); err != nil {
			return st, err
		}
	}

	s.db.QueryRowContext(ctx, `SELECT day FROM game WHERE id = 1`).Scan(&st.Day)
	s.db.QueryRowContext(ctx, `SELECT event_id FROM current_event WHERE id = 1`).Scan(&st.CurrentEvent)

	return st, nil
}
