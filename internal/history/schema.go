package history

const Schema = `
CREATE TABLE IF NOT EXISTS simulations (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	parameters TEXT NOT NULL,
	statistics TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_simulations_created_at ON simulations(created_at);
`
