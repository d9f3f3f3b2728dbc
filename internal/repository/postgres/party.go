package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/service/notify"
	"github.com/theestifanos/wedding-api/internal/service/rsvp"
)

// PartyRepo implements rsvp.Repository and notify.Repository against
// PostgreSQL. Row-level access control is the store's concern; the server
// connects with the privileged role.
type PartyRepo struct{ db *sql.DB }

// NewPartyRepo creates a Postgres-backed party repository.
func NewPartyRepo(db *sql.DB) *PartyRepo { return &PartyRepo{db: db} }

const partyColumns = `id, party_name, status, COALESCE(email,''), COALESCE(phone,''),
	       COALESCE(message,''), has_responded, created_at, updated_at`

// SearchParty matches the input against party and guest names,
// case-insensitively. The first matching party wins, with its guests in
// original invitation order.
func (r *PartyRepo) SearchParty(ctx context.Context, name string) (*domain.Party, error) {
	p := &domain.Party{}
	err := r.db.QueryRowContext(ctx, `
		SELECT `+partyColumns+`
		FROM parties p
		WHERE p.party_name ILIKE '%' || $1 || '%'
		   OR EXISTS (
		       SELECT 1 FROM guests g
		       WHERE g.party_id = p.id AND g.name ILIKE '%' || $1 || '%'
		   )
		ORDER BY p.id
		LIMIT 1
	`, name).Scan(
		&p.ID, &p.PartyName, &p.Status, &p.Email, &p.Phone,
		&p.Message, &p.HasResponded, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, rsvp.ErrPartyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("search party: %w", err)
	}

	if err := r.loadGuests(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetParty returns one party by id, with guests.
func (r *PartyRepo) GetParty(ctx context.Context, id int64) (*domain.Party, error) {
	p := &domain.Party{}
	err := r.db.QueryRowContext(ctx, `
		SELECT `+partyColumns+`
		FROM parties p
		WHERE p.id = $1
	`, id).Scan(
		&p.ID, &p.PartyName, &p.Status, &p.Email, &p.Phone,
		&p.Message, &p.HasResponded, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, notify.ErrPartyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get party: %w", err)
	}

	if err := r.loadGuests(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PartyRepo) loadGuests(ctx context.Context, p *domain.Party) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, party_id, COALESCE(name,''), is_attending, is_plus_one
		FROM guests
		WHERE party_id = $1
		ORDER BY position, id
	`, p.ID)
	if err != nil {
		return fmt.Errorf("load guests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.PartyID, &g.Name, &g.IsAttending, &g.IsPlusOne); err != nil {
			return fmt.Errorf("scan guest: %w", err)
		}
		p.Guests = append(p.Guests, g)
	}
	return rows.Err()
}

// SubmitResponse persists a full RSVP in one transaction: per-guest name
// and attendance updates scoped to the party, then the party's contact
// fields and responded status. Either everything commits or nothing does.
func (r *PartyRepo) SubmitResponse(ctx context.Context, sub rsvp.Submission) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submit: %w", err)
	}
	defer tx.Rollback()

	for _, g := range sub.Guests {
		res, err := tx.ExecContext(ctx, `
			UPDATE guests SET name = $1, is_attending = $2
			WHERE id = $3 AND party_id = $4
		`, g.Name, g.IsAttending, g.ID, sub.PartyID)
		if err != nil {
			return fmt.Errorf("update guest %d: %w", g.ID, err)
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return rsvp.ErrPartyNotFound
		}
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE parties
		SET email = $1, phone = $2, message = $3,
		    status = $4, has_responded = true, updated_at = NOW()
		WHERE id = $5
	`, sub.Email, sub.Phone, sub.Message, domain.PartyResponded, sub.PartyID)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return rsvp.ErrPartyNotFound
	}

	return tx.Commit()
}

// UpdatePartyStatus transitions a party's status.
func (r *PartyRepo) UpdatePartyStatus(ctx context.Context, id int64, status domain.PartyStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE parties SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notify.ErrPartyNotFound
	}
	return nil
}

// AppendCampaignLog inserts one append-only audit row.
func (r *PartyRepo) AppendCampaignLog(ctx context.Context, entry *domain.CampaignLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO campaign_logs (id, party_id, campaign_id, channel, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, entry.ID, entry.PartyID, entry.CampaignID, entry.Channel, entry.Status)
	if err != nil {
		return fmt.Errorf("append campaign log: %w", err)
	}
	return nil
}
