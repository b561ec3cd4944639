package models

import (
	"errors"
	"server/config"
	"server/db"
	"testing"
)

func initTestDB(t *testing.T) {
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file:" + t.Name() + "?mode=memory&cache=shared"
	db.Init()
	Init()
}

func followCount(t *testing.T) int64 {
	var count int64
	if err := db.Instance.Model(&Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("cannot count follows: %v", err)
	}
	return count
}

func TestFollowCreateAndDelete(t *testing.T) {
	initTestDB(t)
	alice, err := UserCreate("Alice", "alice", "secret")
	if err != nil {
		t.Fatalf("cannot create user: %v", err)
	}
	bob, err := UserCreate("Bob", "bob", "secret")
	if err != nil {
		t.Fatalf("cannot create user: %v", err)
	}

	if err = FollowCreate(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if !IsFollowing(alice.ID, bob.ID) {
		t.Errorf("alice should be following bob")
	}
	if IsFollowing(bob.ID, alice.ID) {
		t.Errorf("follow edges must be directed")
	}
	if got := followCount(t); got != 1 {
		t.Errorf("follow count = %d, want 1", got)
	}

	// Following twice leaves a single edge
	if err = FollowCreate(alice.ID, bob.ID); err != nil {
		t.Fatalf("repeated follow should be a no-op, got: %v", err)
	}
	if got := followCount(t); got != 1 {
		t.Errorf("follow count after duplicate = %d, want 1", got)
	}

	if err = FollowDelete(alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if got := followCount(t); got != 0 {
		t.Errorf("follow count after unfollow = %d, want 0", got)
	}
	// Unfollowing again is a no-op
	if err = FollowDelete(alice.ID, bob.ID); err != nil {
		t.Fatalf("repeated unfollow should be a no-op, got: %v", err)
	}
}

func TestFollowSelf(t *testing.T) {
	initTestDB(t)
	alice, err := UserCreate("Alice", "alice", "secret")
	if err != nil {
		t.Fatalf("cannot create user: %v", err)
	}
	if err = FollowCreate(alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("self-follow error = %v, want ErrSelfFollow", err)
	}
	if got := followCount(t); got != 0 {
		t.Errorf("follow count = %d, want 0", got)
	}
}

func TestIsFollowingAnonymous(t *testing.T) {
	initTestDB(t)
	bob, err := UserCreate("Bob", "bob", "secret")
	if err != nil {
		t.Fatalf("cannot create user: %v", err)
	}
	if IsFollowing(0, bob.ID) {
		t.Errorf("anonymous users never follow anyone")
	}
}
