package store

import "context"

func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, display_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, password_hash, display_name, created_at`,
		u.ID, u.Email, u.PasswordHash, u.DisplayName)

	var out User
	err := row.Scan(&out.ID, &out.Email, &out.PasswordHash, &out.DisplayName, &out.CreatedAt)
	return out, err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, display_name, created_at
		 FROM users WHERE email = $1`,
		email)

	var out User
	err := row.Scan(&out.ID, &out.Email, &out.PasswordHash, &out.DisplayName, &out.CreatedAt)
	return out, err
}

func (s *Store) GetUserByID(ctx context.Context, id string) (User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, display_name, created_at
		 FROM users WHERE id = $1`,
		id)

	var out User
	err := row.Scan(&out.ID, &out.Email, &out.PasswordHash, &out.DisplayName, &out.CreatedAt)
	return out, err
}
