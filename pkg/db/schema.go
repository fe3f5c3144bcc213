package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents: one row per classified upload
CREATE TABLE IF NOT EXISTS documents (
    document_id TEXT PRIMARY KEY,
    file_name TEXT NOT NULL,
    format TEXT NOT NULL,
    doc_type TEXT NOT NULL,
    language TEXT,
    dominant_domain TEXT NOT NULL,
    contains_pricing BOOLEAN NOT NULL DEFAULT 0,
    page_count INTEGER NOT NULL,
    taxonomy_version TEXT NOT NULL,
    uploaded_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(doc_type);
CREATE INDEX IF NOT EXISTS idx_documents_domain ON documents(dominant_domain);
CREATE INDEX IF NOT EXISTS idx_documents_uploaded ON documents(uploaded_at DESC);

-- Page classifications: one row per unit of a document
CREATE TABLE IF NOT EXISTS page_classifications (
    page_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id TEXT NOT NULL,
    page_index INTEGER NOT NULL,
    heading TEXT,
    primary_label TEXT NOT NULL,
    intent_group TEXT NOT NULL,
    domain TEXT NOT NULL,
    pricing TEXT NOT NULL,
    confidence REAL NOT NULL,
    confidence_level TEXT NOT NULL,
    sections TEXT,              -- JSON array of backend sections
    secondary_labels TEXT,      -- JSON array of labels
    rationale TEXT,
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(document_id, page_index)
);

CREATE INDEX IF NOT EXISTS idx_pages_document ON page_classifications(document_id);
CREATE INDEX IF NOT EXISTS idx_pages_label ON page_classifications(primary_label);
CREATE INDEX IF NOT EXISTS idx_pages_level ON page_classifications(confidence_level);

-- Requirements: clauses extracted from rfp/rfi documents. Rows are keyed
-- by extraction position within the document: source ids come from the
-- client's own numbering and may repeat across sections (two sections can
-- each open with a clause "1.").
CREATE TABLE IF NOT EXISTS requirements (
    requirement_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    source_id TEXT NOT NULL,
    text TEXT NOT NULL,
    target_section TEXT NOT NULL,
    priority TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE,
    UNIQUE(document_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_requirements_document ON requirements(document_id);
CREATE INDEX IF NOT EXISTS idx_requirements_section ON requirements(target_section);
`
