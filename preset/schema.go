package preset

const schema = `
CREATE TABLE IF NOT EXISTS presets (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	start_price REAL NOT NULL,
	current_price REAL NOT NULL,
	step REAL NOT NULL,
	lot_size REAL NOT NULL,
	level_count INTEGER NOT NULL,
	take_profit REAL NOT NULL,
	balance REAL NOT NULL,
	leverage INTEGER NOT NULL,
	contract_size REAL NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	preset_name TEXT NOT NULL DEFAULT '',
	start_price REAL NOT NULL,
	current_price REAL NOT NULL,
	step REAL NOT NULL,
	lot_size REAL NOT NULL,
	level_count INTEGER NOT NULL,
	take_profit REAL NOT NULL,
	balance REAL NOT NULL,
	leverage INTEGER NOT NULL,
	contract_size REAL NOT NULL,
	num_triggered INTEGER NOT NULL,
	total_lots REAL NOT NULL,
	avg_entry REAL NOT NULL,
	floating_pl REAL NOT NULL,
	equity REAL NOT NULL,
	used_margin REAL NOT NULL,
	margin_percent REAL NOT NULL,
	tier TEXT NOT NULL,
	margin_call_price REAL NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
`
