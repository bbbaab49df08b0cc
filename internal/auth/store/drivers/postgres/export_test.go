package postgres

import "context"

// Truncate empties the accounts table between tests.
func Truncate(ctx context.Context, s *Store) error {
	_, err := s.db.ExecContext(ctx, `TRUNCATE accounts`)
	return err
}
