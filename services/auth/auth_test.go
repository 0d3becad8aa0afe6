package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/bholdsworth/mindful-booking-noushy/models"
)

type fakeStaffRepo struct {
	accounts []models.StaffAccount
}

func (f *fakeStaffRepo) Create(ctx context.Context, account models.StaffAccount) error {
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	for i := range f.accounts {
		if f.accounts[i].Email == email {
			return &f.accounts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffAccount, error) {
	for i := range f.accounts {
		if f.accounts[i].ID == id {
			return &f.accounts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func TestRegisterStaff(t *testing.T) {
	repo := &fakeStaffRepo{}
	svc := &DefaultAuthService{Repo: repo}
	ctx := context.Background()

	account, err := svc.RegisterStaff(ctx, "Sarah Chen", "sarah@noushy.com.au", "correct-horse-battery")
	if err != nil {
		t.Fatalf("RegisterStaff failed: %v", err)
	}
	if account.ID == "" || account.Role != "staff" {
		t.Fatalf("unexpected account: %+v", account)
	}

	// The stored hash verifies against the original password, never equals it.
	if account.PasswordHash == "correct-horse-battery" {
		t.Fatal("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("correct-horse-battery")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	got, err := svc.GetAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if got.Email != "sarah@noushy.com.au" {
		t.Fatalf("GetAccount returned %+v", got)
	}
}

func TestRegisterStaffRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeStaffRepo{}
	svc := &DefaultAuthService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.RegisterStaff(ctx, "Sarah Chen", "sarah@noushy.com.au", "correct-horse-battery"); err != nil {
		t.Fatalf("first RegisterStaff failed: %v", err)
	}
	if _, err := svc.RegisterStaff(ctx, "Other Sarah", "sarah@noushy.com.au", "another-password"); err == nil {
		t.Fatal("expected an error for a duplicate email")
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("duplicate registration stored an account: %d accounts", len(repo.accounts))
	}
}

func TestRegisterStaffRejectsWeakInput(t *testing.T) {
	svc := &DefaultAuthService{Repo: &fakeStaffRepo{}}
	ctx := context.Background()

	if _, err := svc.RegisterStaff(ctx, "", "sarah@noushy.com.au", "correct-horse-battery"); err == nil {
		t.Fatal("expected an error for a missing name")
	}
	if _, err := svc.RegisterStaff(ctx, "Sarah Chen", "sarah@noushy.com.au", "short"); err == nil {
		t.Fatal("expected an error for a short password")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := &fakeStaffRepo{}
	svc := &DefaultAuthService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.RegisterStaff(ctx, "Sarah Chen", "sarah@noushy.com.au", "correct-horse-battery"); err != nil {
		t.Fatalf("RegisterStaff failed: %v", err)
	}

	if _, _, err := svc.Authenticate(ctx, "sarah@noushy.com.au", "wrong-password"); err == nil {
		t.Fatal("expected an error for a wrong password")
	}
	if _, _, err := svc.Authenticate(ctx, "nobody@noushy.com.au", "correct-horse-battery"); err == nil {
		t.Fatal("expected an error for an unknown email")
	}
}
