package store

import (
	sq "github.com/Masterminds/squirrel"
)

const recordsTable = "records"

// Collections of the records table, one per store.
const (
	AccountsCollection  = "accounts"
	ShortagesCollection = "shortages"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectCollectionQuery(collection string) (string, []any, error) {
	return sqlite.
		Select("record_key", "payload").
		From(recordsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("record_key").
		ToSql()
}

func buildDeleteCollectionQuery(collection string) (string, []any, error) {
	return sqlite.
		Delete(recordsTable).
		Where(sq.Eq{"collection": collection}).
		ToSql()
}

// maxRecordsPerInsert caps the rows of one INSERT. Each row binds three
// variables and SQLite builds before 3.32 allow only 999 per statement.
const maxRecordsPerInsert = 300

// buildInsertRecordsQuery builds one multi-row INSERT for the given
// key/payload pairs. Callers skip it when there is nothing to insert.
func buildInsertRecordsQuery(collection string, keys []string, payloads [][]byte) (string, []any, error) {
	insert := sqlite.
		Insert(recordsTable).
		Columns("collection", "record_key", "payload")

	for i, key := range keys {
		insert = insert.Values(collection, key, string(payloads[i]))
	}

	return insert.ToSql()
}
