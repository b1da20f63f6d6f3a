package cli

// envelope is the JSON shape of every command result: {"data": ...}.
type envelope struct {
	Data any `json:"data"`
}

// tableEnvelope is an envelope that can also be listed with --format table.
type tableEnvelope struct {
	envelope
	header []string
	rows   [][]string
}

func (t tableEnvelope) Header() []string { return t.header }
func (t tableEnvelope) Rows() [][]string { return t.rows }

func withTable(data any, header []string, rows [][]string) tableEnvelope {
	return tableEnvelope{envelope: envelope{Data: data}, header: header, rows: rows}
}
