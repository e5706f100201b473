package users

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/devfoliohq/devfolio-api/pkg/models"
)

func setupDB(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
	if err := db.InitDB(); err != nil {
		t.Fatal(err)
	}
}

func insertUser(t *testing.T, name, email string) *User {
	u := User{Name: name, Email: email, Pw: "not-a-real-hash"}
	id, err := u.Insert()
	if err != nil {
		t.Fatalf("insert %s: %v", name, err)
	}

	user, err := UserById(id)
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func TestUserLookups(t *testing.T) {
	setupDB(t)

	u := insertUser(t, "alice", "alice@example.com")

	byName, err := UserByName("ALICE")
	if err != nil {
		t.Fatalf("case-insensitive lookup: %v", err)
	}
	if byName.Id != u.Id {
		t.Errorf("got id %d, want %d", byName.Id, u.Id)
	}

	byEmail, err := UserByEmail("alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if byEmail.Id != u.Id {
		t.Errorf("got id %d, want %d", byEmail.Id, u.Id)
	}
}

func TestUniqueConstraints(t *testing.T) {
	setupDB(t)

	insertUser(t, "alice", "alice@example.com")

	dup := User{Name: "Alice", Email: "other@example.com", Pw: "x"}
	if _, err := dup.Insert(); err == nil {
		t.Error("expected unique constraint on name")
	}

	dup = User{Name: "bob", Email: "alice@example.com", Pw: "x"}
	if _, err := dup.Insert(); err == nil {
		t.Error("expected unique constraint on email")
	}
}

func TestUpdateProfileUsernameConflict(t *testing.T) {
	setupDB(t)

	insertUser(t, "alice", "alice@example.com")
	bob := insertUser(t, "bob", "bob@example.com")

	name := "alice"
	err := UpdateProfile(bob, &models.ProfileForm{Username: &name})
	if err != ErrNameTaken {
		t.Fatalf("got %v, want ErrNameTaken", err)
	}

	// original name must survive a failed update
	after, err := UserById(bob.Id)
	if err != nil {
		t.Fatal(err)
	}
	if after.Name != "bob" {
		t.Errorf("name changed to %q after conflict", after.Name)
	}
}

func TestUpdateProfileSameNameSkipsCheck(t *testing.T) {
	setupDB(t)

	alice := insertUser(t, "alice", "alice@example.com")

	name := "alice"
	bio := "writes Go"
	if err := UpdateProfile(alice, &models.ProfileForm{Username: &name, Bio: &bio}); err != nil {
		t.Fatalf("no-op username update should pass: %v", err)
	}

	after, err := UserById(alice.Id)
	if err != nil {
		t.Fatal(err)
	}
	if after.Bio == nil || *after.Bio != "writes Go" {
		t.Error("bio not updated")
	}
}

func TestTokens(t *testing.T) {
	setupDB(t)

	alice := insertUser(t, "alice", "alice@example.com")

	token, err := GetOrCreateToken(alice.Id)
	if err != nil {
		t.Fatal(err)
	}

	again, err := GetOrCreateToken(alice.Id)
	if err != nil {
		t.Fatal(err)
	}
	if token != again {
		t.Error("expected the live token to be reused")
	}

	byToken, err := UserByToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if byToken.Id != alice.Id {
		t.Errorf("got id %d, want %d", byToken.Id, alice.Id)
	}

	if err := RemoveTokens(alice.Id); err != nil {
		t.Fatal(err)
	}
	if _, err := UserByToken(token); err != sql.ErrNoRows {
		t.Errorf("got %v, want sql.ErrNoRows after logout", err)
	}
}
