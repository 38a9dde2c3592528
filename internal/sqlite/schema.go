package sqlite

// Schema DDL. Row ids are UUID v7 strings; ordinal keeps list order.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS books (
    book TEXT PRIMARY KEY,
    saved_at TEXT NOT NULL
);`

	createPersons = `CREATE TABLE IF NOT EXISTS persons (
    person_id TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL
);`

	createProperties = `CREATE TABLE IF NOT EXISTS properties (
    property_id TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
    address TEXT NOT NULL,
    description TEXT NOT NULL,
    owner_name TEXT NOT NULL,
    owner_phone TEXT,
    characteristics TEXT
);`
)

// Index DDL.
const (
	idxPersonsOrdinal    = `CREATE INDEX IF NOT EXISTS idx_persons_ordinal ON persons(ordinal);`
	idxPropertiesOrdinal = `CREATE INDEX IF NOT EXISTS idx_properties_ordinal ON properties(ordinal);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createBooks,
	createPersons,
	createProperties,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxPersonsOrdinal,
	idxPropertiesOrdinal,
}

// Names recorded in the books table once a book has been saved.
const (
	bookPersons    = "persons"
	bookProperties = "properties"
)
