package models

import "testing"

func TestSetPasswordHashes(t *testing.T) {
	u := User{Username: "ana"}
	if err := u.SetPassword("secret123"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}

	if u.PasswordHash == "" || u.PasswordHash == "secret123" {
		t.Fatalf("password must be stored hashed, got %q", u.PasswordHash)
	}

	if err := u.CheckPassword("secret123"); err != nil {
		t.Errorf("correct password must verify: %v", err)
	}
	if err := u.CheckPassword("wrong"); err == nil {
		t.Error("wrong password must not verify")
	}
}

func TestSetPasswordSalts(t *testing.T) {
	a := User{Username: "a"}
	b := User{Username: "b"}
	if err := a.SetPassword("secret123"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetPassword("secret123"); err != nil {
		t.Fatal(err)
	}

	if a.PasswordHash == b.PasswordHash {
		t.Error("equal passwords must hash to different salted values")
	}
}
