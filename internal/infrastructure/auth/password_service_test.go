package auth

import "testing"

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("password stored in the clear")
	}

	if !svc.Verify(hash, "pw1") {
		t.Error("correct password rejected")
	}
	if svc.Verify(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	if svc.Verify("not-a-bcrypt-hash", "pw1") {
		t.Error("garbage hash accepted")
	}
}

func TestPasswordServiceImpl_Hash_Salted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := svc.Hash("pw1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct salted hashes for the same password")
	}
}
