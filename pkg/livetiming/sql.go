package livetiming

func buildCreateResponsesTable() string {
	return `CREATE TABLE IF NOT EXISTS responses (
		url TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched TEXT DEFAULT CURRENT_TIMESTAMP);`
}

func buildSelectResponse() string {
	return `SELECT body FROM responses WHERE url = ?`
}

func buildUpsertResponse() string {
	return `INSERT OR REPLACE INTO responses (url, body) VALUES (?, ?)`
}
