// Package sheet manages schematic sheet metadata: names, owners, and
// membership. The diagram itself lives only in the session layer's editor
// and is never written to the database.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gridwire/gridwire/backend-go/internal/store"
	"github.com/gridwire/gridwire/backend-go/internal/typeid"
)

var (
	ErrNotFound  = errors.New("sheet not found")
	ErrForbidden = errors.New("forbidden")
	ErrNotMember = errors.New("not a sheet member")
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

type Sheet struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Member struct {
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
}

func (s *Service) Create(ctx context.Context, name, ownerID string) (*Sheet, error) {
	dbSheet, err := s.store.CreateSheet(ctx, store.Sheet{
		ID:      typeid.NewSheetID(),
		Name:    name,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	err = s.store.AddMember(ctx, store.Member{
		SheetID: dbSheet.ID,
		UserID:  ownerID,
		Role:    store.RoleOwner,
	})
	if err != nil {
		return nil, fmt.Errorf("add owner as member: %w", err)
	}

	return toSheet(dbSheet), nil
}

func (s *Service) Get(ctx context.Context, sheetID, userID string) (*Sheet, error) {
	if err := s.CheckMembership(ctx, sheetID, userID); err != nil {
		return nil, err
	}

	dbSheet, err := s.store.GetSheet(ctx, sheetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get sheet: %w", err)
	}

	return toSheet(dbSheet), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*Sheet, error) {
	dbSheets, err := s.store.ListSheetsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}

	out := make([]*Sheet, 0, len(dbSheets))
	for _, sh := range dbSheets {
		out = append(out, toSheet(sh))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, sheetID, userID string) error {
	dbSheet, err := s.store.GetSheet(ctx, sheetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get sheet: %w", err)
	}

	if dbSheet.OwnerID != userID {
		return ErrForbidden
	}

	if err := s.store.DeleteSheet(ctx, sheetID); err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	return nil
}

// Invite adds a registered user, looked up by email, as an editor.
func (s *Service) Invite(ctx context.Context, sheetID, inviterID, email string) (*Member, error) {
	if err := s.CheckMembership(ctx, sheetID, inviterID); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no user with email %s", email)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	err = s.store.AddMember(ctx, store.Member{
		SheetID: sheetID,
		UserID:  user.ID,
		Role:    store.RoleEditor,
	})
	if err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}

	return &Member{
		UserID:      user.ID,
		Role:        store.RoleEditor,
		DisplayName: user.DisplayName,
		Email:       user.Email,
	}, nil
}

func (s *Service) ListMembers(ctx context.Context, sheetID, userID string) ([]*Member, error) {
	if err := s.CheckMembership(ctx, sheetID, userID); err != nil {
		return nil, err
	}

	dbMembers, err := s.store.ListMembers(ctx, sheetID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]*Member, 0, len(dbMembers))
	for _, m := range dbMembers {
		member := &Member{UserID: m.UserID, Role: m.Role}
		if user, err := s.store.GetUserByID(ctx, m.UserID); err == nil {
			member.DisplayName = user.DisplayName
			member.Email = user.Email
		}
		out = append(out, member)
	}
	return out, nil
}

func (s *Service) RemoveMember(ctx context.Context, sheetID, requesterID, userID string) error {
	dbSheet, err := s.store.GetSheet(ctx, sheetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get sheet: %w", err)
	}

	// Only the owner removes others; anyone may remove themselves. The
	// owner cannot leave their own sheet.
	if requesterID != userID && dbSheet.OwnerID != requesterID {
		return ErrForbidden
	}
	if userID == dbSheet.OwnerID {
		return ErrForbidden
	}

	if err := s.store.RemoveMember(ctx, sheetID, userID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// CheckMembership returns ErrNotMember when userID has no row on the sheet.
func (s *Service) CheckMembership(ctx context.Context, sheetID, userID string) error {
	_, err := s.store.GetMember(ctx, sheetID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotMember
		}
		return fmt.Errorf("get member: %w", err)
	}
	return nil
}

func toSheet(sh store.Sheet) *Sheet {
	return &Sheet{
		ID:        sh.ID,
		Name:      sh.Name,
		OwnerID:   sh.OwnerID,
		CreatedAt: sh.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: sh.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
