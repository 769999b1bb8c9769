package domain

import (
	"testing"
	"time"
)

func TestUser_HasPassword(t *testing.T) {
	verified := &User{PasswordHash: "$2a$10$abc"}
	if !verified.HasPassword() {
		t.Error("account with a hash must report a password")
	}

	unverified := &User{}
	if unverified.HasPassword() {
		t.Error("account without a hash must not report a password")
	}
}

func TestPendingRegistration_Expired(t *testing.T) {
	now := time.Now()
	draft := &PendingRegistration{ExpiresAt: now.Add(10 * time.Minute)}

	if draft.Expired(now) {
		t.Error("draft inside its window must not be expired")
	}
	if !draft.Expired(now.Add(11 * time.Minute)) {
		t.Error("draft past its window must be expired")
	}
	if draft.Expired(draft.ExpiresAt) {
		t.Error("the boundary instant itself is still valid")
	}
}
