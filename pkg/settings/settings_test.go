package settings

import (
	"strings"
	"testing"
)

func TestSessionTypeFor(t *testing.T) {
	tests := []struct {
		code string
		want string
		ok   bool
	}{
		{"FP1", Practice, true},
		{"FP2", Practice, true},
		{"FP3", Practice, true},
		{"Q", Qual, true},
		{"S", Sprint, true},
		{"R", Race, true},
		{"X", "", false},
	}

	for _, tt := range tests {
		got, ok := SessionTypeFor(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SessionTypeFor(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNotificationsFlags(t *testing.T) {
	n := AllDisabled()
	if n.PracticeEnabledInt() != 0 || n.RaceEnabledInt() != 0 {
		t.Error("AllDisabled starts with enabled flags")
	}

	n.setSessionTypeEnabledFlag(Race, true)
	if n.RaceEnabledInt() != 1 {
		t.Error("enabling race does not stick")
	}
	if n.RaceSymbol() != "🔔" || n.PracticeSymbol() != "🔕" {
		t.Errorf("symbols = %s %s", n.RaceSymbol(), n.PracticeSymbol())
	}
}

func TestBuildUpdateUserCommand(t *testing.T) {
	n := AllDisabled()
	n.setSessionTypeEnabledFlag(Qual, true)

	stmt := buildUpdateUserCommand("user1", "chat1", n)

	if !strings.Contains(stmt, "INSERT OR REPLACE INTO notifications") {
		t.Errorf("unexpected statement: %s", stmt)
	}
	if !strings.Contains(stmt, "'user1', 'user1', 'chat1', 0, 1, 0, 0") {
		t.Errorf("unexpected values: %s", stmt)
	}
}

func TestManagerToggleRoundTrip(t *testing.T) {
	old := DbName
	t.Cleanup(func() { DbName = old })
	DbName = t.TempDir() + "/settings.db"

	m, err := NewManager()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	defer m.Close()

	if err := m.ToggleNotificationForSessionStarted("u1", "c1", Race); err != nil {
		t.Fatalf("toggle: %s", err)
	}

	n, err := m.ListNotifications("u1")
	if err != nil {
		t.Fatalf("list: %s", err)
	}
	if !n[Race] || n[Practice] {
		t.Errorf("notifications after toggle: %v", n)
	}

	users, err := m.ListUsersForSessionStarted(Race)
	if err != nil {
		t.Fatalf("list users: %s", err)
	}
	if len(users) != 1 || users[0].ChatID != "c1" {
		t.Errorf("users = %v, want one user with chat c1", users)
	}

	// toggling again flips it back off
	if err := m.ToggleNotificationForSessionStarted("u1", "c1", Race); err != nil {
		t.Fatalf("toggle: %s", err)
	}
	users, err = m.ListUsersForSessionStarted(Race)
	if err != nil {
		t.Fatalf("list users: %s", err)
	}
	if len(users) != 0 {
		t.Errorf("users = %v after disabling, want none", users)
	}
}
