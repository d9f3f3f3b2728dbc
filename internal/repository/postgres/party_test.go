package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/theestifanos/wedding-api/internal/domain"
	"github.com/theestifanos/wedding-api/internal/service/notify"
	"github.com/theestifanos/wedding-api/internal/service/rsvp"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func partyRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "party_name", "status", "email", "phone",
		"message", "has_responded", "created_at", "updated_at",
	}).AddRow(7, "The Fortune Family", "invited", "", "", "", false, now, now)
}

func guestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "party_id", "name", "is_attending", "is_plus_one"}).
		AddRow(70, 7, "Sarah Fortune", false, false).
		AddRow(71, 7, "Ben Fortune", false, false).
		AddRow(72, 7, "", false, true)
}

func TestSearchParty(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM parties p").
		WithArgs("sarah fortune").
		WillReturnRows(partyRows())
	mock.ExpectQuery("SELECT (.+) FROM guests").
		WithArgs(int64(7)).
		WillReturnRows(guestRows())

	p, err := repo.SearchParty(context.Background(), "sarah fortune")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if p.ID != 7 || p.Status != domain.PartyInvited {
		t.Fatalf("unexpected party: %+v", p)
	}
	if len(p.Guests) != 3 {
		t.Fatalf("expected 3 guests, got %d", len(p.Guests))
	}
	// Original invitation order preserved.
	if p.Guests[0].ID != 70 || p.Guests[2].IsPlusOne != true {
		t.Fatalf("guest ordering lost: %+v", p.Guests)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSearchPartyNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM parties p").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SearchParty(context.Background(), "nobody")
	if !errors.Is(err, rsvp.ErrPartyNotFound) {
		t.Fatalf("expected rsvp.ErrPartyNotFound, got %v", err)
	}
}

func TestGetPartyNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM parties p").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetParty(context.Background(), 99)
	if !errors.Is(err, notify.ErrPartyNotFound) {
		t.Fatalf("expected notify.ErrPartyNotFound, got %v", err)
	}
}

func submission() rsvp.Submission {
	return rsvp.Submission{
		PartyID: 7,
		Email:   "ab@cd.com",
		Phone:   "+14155552671",
		Message: "see you there",
		Consent: true,
		Guests: []rsvp.GuestDecision{
			{ID: 70, Name: "Sarah Fortune", IsAttending: true},
			{ID: 72, Name: "Dana Guest", IsAttending: true, IsPlusOne: true},
		},
	}
}

func TestSubmitResponseCommits(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE guests SET").
		WithArgs("Sarah Fortune", true, int64(70), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE guests SET").
		WithArgs("Dana Guest", true, int64(72), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE parties").
		WithArgs("ab@cd.com", "+14155552671", "see you there", "responded", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.SubmitResponse(context.Background(), submission()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSubmitResponseRollsBackOnForeignGuest(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	// A guest id outside the party updates zero rows: the whole
	// submission must roll back.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE guests SET").
		WithArgs("Sarah Fortune", true, int64(70), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SubmitResponse(context.Background(), submission())
	if !errors.Is(err, rsvp.ErrPartyNotFound) {
		t.Fatalf("expected ErrPartyNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSubmitResponseRollsBackOnPartyError(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE guests SET").
		WithArgs("Sarah Fortune", true, int64(70), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE guests SET").
		WithArgs("Dana Guest", true, int64(72), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE parties").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if err := repo.SubmitResponse(context.Background(), submission()); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdatePartyStatus(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectExec("UPDATE parties SET status").
		WithArgs("invited", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePartyStatus(context.Background(), 7, domain.PartyInvited); err != nil {
		t.Fatalf("update status: %v", err)
	}

	mock.ExpectExec("UPDATE parties SET status").
		WithArgs("invited", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdatePartyStatus(context.Background(), 99, domain.PartyInvited); !errors.Is(err, notify.ErrPartyNotFound) {
		t.Fatalf("expected ErrPartyNotFound, got %v", err)
	}
}

func TestAppendCampaignLog(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPartyRepo(db)

	mock.ExpectExec("INSERT INTO campaign_logs").
		WithArgs(sqlmock.AnyArg(), int64(7), "save-the-date", "email", "sent").
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &domain.CampaignLog{
		PartyID:    7,
		CampaignID: domain.CampaignSaveTheDate,
		Channel:    domain.ChannelEmail,
		Status:     "sent",
	}
	if err := repo.AppendCampaignLog(context.Background(), entry); err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
