package store

import "context"

func (s *Store) CreateSheet(ctx context.Context, sh Sheet) (Sheet, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO sheets (id, name, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, owner_id, created_at, updated_at`,
		sh.ID, sh.Name, sh.OwnerID)

	var out Sheet
	err := row.Scan(&out.ID, &out.Name, &out.OwnerID, &out.CreatedAt, &out.UpdatedAt)
	return out, err
}

func (s *Store) GetSheet(ctx context.Context, id string) (Sheet, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, owner_id, created_at, updated_at
		 FROM sheets WHERE id = $1`,
		id)

	var out Sheet
	err := row.Scan(&out.ID, &out.Name, &out.OwnerID, &out.CreatedAt, &out.UpdatedAt)
	return out, err
}

func (s *Store) ListSheetsForUser(ctx context.Context, userID string) ([]Sheet, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT s.id, s.name, s.owner_id, s.created_at, s.updated_at
		 FROM sheets s
		 JOIN sheet_members m ON m.sheet_id = s.id
		 WHERE m.user_id = $1
		 ORDER BY s.updated_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sheet
	for rows.Next() {
		var sh Sheet
		if err := rows.Scan(&sh.ID, &sh.Name, &sh.OwnerID, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

func (s *Store) DeleteSheet(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sheets WHERE id = $1`, id)
	return err
}

func (s *Store) AddMember(ctx context.Context, m Member) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sheet_members (sheet_id, user_id, role)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (sheet_id, user_id) DO UPDATE SET role = EXCLUDED.role`,
		m.SheetID, m.UserID, m.Role)
	return err
}

func (s *Store) GetMember(ctx context.Context, sheetID, userID string) (Member, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT sheet_id, user_id, role
		 FROM sheet_members WHERE sheet_id = $1 AND user_id = $2`,
		sheetID, userID)

	var out Member
	err := row.Scan(&out.SheetID, &out.UserID, &out.Role)
	return out, err
}

func (s *Store) ListMembers(ctx context.Context, sheetID string) ([]Member, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT sheet_id, user_id, role
		 FROM sheet_members WHERE sheet_id = $1 ORDER BY user_id`,
		sheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.SheetID, &m.UserID, &m.Role); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) RemoveMember(ctx context.Context, sheetID, userID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM sheet_members WHERE sheet_id = $1 AND user_id = $2`,
		sheetID, userID)
	return err
}
