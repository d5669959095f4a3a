package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) SaveSnapshot(ctx context.Context, room string, messages []models.Message) error {
	log := logger.FromContext(ctx)

	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveSnapshot").
			Str("room", room).
			Msg("failed to begin snapshot transaction")
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	clearQuery, clearArgs, err := buildClearRoomHistoryQuery(room)
	if err != nil {
		return fmt.Errorf("failed to build clear query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveSnapshot").
			Str("room", room).
			Msg("failed to clear previous room snapshot")
		return fmt.Errorf("failed to clear previous snapshot (room=%s): %w", room, err)
	}

	for position, msg := range messages {
		insertQuery, insertArgs, buildErr := buildInsertMessageQuery(room, position, msg)
		if buildErr != nil {
			return fmt.Errorf("failed to build insert query: %w", buildErr)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "historyRepository.SaveSnapshot").
				Str("room", room).
				Str("id", msg.Id).
				Msg("failed to insert snapshot row")
			return fmt.Errorf("failed to insert snapshot row (id=%s): %w", msg.Id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveSnapshot").
			Str("room", room).
			Msg("failed to commit snapshot transaction")
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

func (h *historyRepository) GetRoomHistory(ctx context.Context, room string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoomHistoryQuery(room)
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.GetRoomHistory").
			Str("room", room).
			Msg("failed to execute query for cached room history")
		return nil, fmt.Errorf("failed to query cached room history: %w", err)
	}
	defer rows.Close()

	var items []models.Message

	for rows.Next() {
		var item models.Message

		scanErr := rows.Scan(
			&item.Id,
			&item.ClientId,
			&item.Room,
			&item.Text,
			&item.User,
			&item.UserId,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyRepository.GetRoomHistory").
				Str("room", room).
				Msg("failed to scan cached message row")
			return nil, fmt.Errorf("failed to scan cached message row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "historyRepository.GetRoomHistory").
			Str("room", room).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached message rows: %w", rowsErr)
	}

	return items, nil
}
