package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shield-chat/models"
)

// messagesTable is the cache table populated from room snapshots.
const messagesTable = "messages"

// historyColumns is the column set scanned into models.Message.
var historyColumns = []string{
	"id",
	"client_id",
	"room",
	"text",
	"user_name",
	"user_id",
	"created_at",
}

// buildSelectRoomHistoryQuery builds the SELECT returning the cached
// snapshot of one room. Rows are ordered by creation time ascending with
// pending rows (NULL created_at) last; position breaks the remaining ties
// so the order is stable across reads.
func buildSelectRoomHistoryQuery(room string) (string, []any, error) {
	return sq.Select(historyColumns...).
		From(messagesTable).
		Where(sq.Eq{"room": room}).
		OrderBy("created_at IS NULL", "created_at ASC", "position ASC").
		ToSql()
}

// buildClearRoomHistoryQuery builds the DELETE removing the previous
// snapshot of a room before a fresh one is written.
func buildClearRoomHistoryQuery(room string) (string, []any, error) {
	return sq.Delete(messagesTable).
		Where(sq.Eq{"room": room}).
		ToSql()
}

// buildInsertMessageQuery builds the INSERT for one snapshot row. The
// position argument records the row's index within the snapshot.
func buildInsertMessageQuery(room string, position int, msg models.Message) (string, []any, error) {
	return sq.Insert(messagesTable).
		Columns(
			"id",
			"client_id",
			"room",
			"text",
			"user_name",
			"user_id",
			"created_at",
			"position",
		).
		Values(
			msg.Id,
			msg.ClientId,
			room,
			msg.Text,
			msg.User,
			msg.UserId,
			msg.CreatedAt,
			position,
		).
		ToSql()
}
