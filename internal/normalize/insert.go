package normalize

import (
	"context"
	"fmt"

	"github.com/blaze-oss/orderbase/internal/logging"
	"github.com/blaze-oss/orderbase/internal/store"
)

// replaceTable drops and recreates a table, then bulk-inserts all rows
// in one transaction. Either every row lands or none do.
func (p *Pipeline) replaceTable(ctx context.Context, name, ddl, insertSQL string, rows [][]any) error {
	if err := store.Recreate(ctx, p.db, name, ddl); err != nil {
		return err
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert for %s: %w", name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", name, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", name, err)
	}

	logging.Info().Str("table", name).Int("rows", len(rows)).Msg("Built table")
	return nil
}
