package signatures

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jacobisaldana/signature-mail/pkg/pg"
	"github.com/Jacobisaldana/signature-mail/pkg/signature"
)

// Store persists signatures per user.
type Store interface {
	List(ctx context.Context, userID string) ([]signature.Signature, error)
	Get(ctx context.Context, userID, id string) (*signature.Signature, error)
	Save(ctx context.Context, sig *signature.Signature) error
	Delete(ctx context.Context, userID, id string) error
}

// querier is the subset of pgxpool.Pool the store uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStore implements Store on a pgx connection pool. Contact data and
// colors are stored as JSONB so the form shape can evolve without schema
// churn.
type PGStore struct {
	db querier
}

// NewPGStore creates a PGStore over the given pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{db: pool}
}

const signatureColumns = `id, user_id, name, label, template_id, contact, colors, font_family, image_url, html, created_at, updated_at`

func scanSignature(row pgx.Row) (*signature.Signature, error) {
	var sig signature.Signature
	err := row.Scan(
		&sig.ID,
		&sig.UserID,
		&sig.Name,
		&sig.Label,
		&sig.TemplateID,
		&sig.Contact,
		&sig.Colors,
		&sig.FontFamily,
		&sig.ImageURL,
		&sig.HTML,
		&sig.CreatedAt,
		&sig.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

func (s *PGStore) List(ctx context.Context, userID string) ([]signature.Signature, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+signatureColumns+` FROM signatures WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()

	var out []signature.Signature
	for rows.Next() {
		sig, err := scanSignature(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signature: %w", err)
		}
		out = append(out, *sig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	return out, nil
}

func (s *PGStore) Get(ctx context.Context, userID, id string) (*signature.Signature, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+signatureColumns+` FROM signatures WHERE user_id = $1 AND id = $2`,
		userID, id)
	sig, err := scanSignature(row)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSignatureNotFound
		}
		return nil, fmt.Errorf("get signature: %w", err)
	}
	return sig, nil
}

func (s *PGStore) Save(ctx context.Context, sig *signature.Signature) error {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO signatures (`+signatureColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			label = EXCLUDED.label,
			template_id = EXCLUDED.template_id,
			contact = EXCLUDED.contact,
			colors = EXCLUDED.colors,
			font_family = EXCLUDED.font_family,
			image_url = EXCLUDED.image_url,
			html = EXCLUDED.html,
			updated_at = EXCLUDED.updated_at
		WHERE signatures.user_id = EXCLUDED.user_id`,
		sig.ID,
		sig.UserID,
		sig.Name,
		sig.Label,
		sig.TemplateID,
		sig.Contact,
		sig.Colors,
		sig.FontFamily,
		sig.ImageURL,
		sig.HTML,
		sig.CreatedAt,
		sig.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save signature: %w", err)
	}
	// The upsert's user_id guard turns a cross-user id collision into an
	// update of zero rows.
	if tag.RowsAffected() == 0 {
		return ErrSignatureNotFound
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, userID, id string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM signatures WHERE user_id = $1 AND id = $2`,
		userID, id)
	if err != nil {
		return fmt.Errorf("delete signature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSignatureNotFound
	}
	return nil
}
