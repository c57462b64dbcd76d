package db

const schema = `
PRAGMA temp_store = MEMORY;

-- Papers table: one row per cleaned record.
CREATE TABLE IF NOT EXISTS papers (
    paper_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    authors TEXT,
    journal TEXT,
    year INTEGER NOT NULL,
    title_word_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year);
CREATE INDEX IF NOT EXISTS idx_papers_journal ON papers(journal);
`
