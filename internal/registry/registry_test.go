package registry

import (
	"strings"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	Register(Variant{ID: "test_solo", Title: "Solo", MinPlayers: 1, MaxPlayers: 1, DefaultPlayers: []string{"A"}})

	if !Exists("test_solo") {
		t.Fatal("Exists() = false after Register")
	}
	v, err := Lookup("test_solo")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if v.Title != "Solo" {
		t.Errorf("Title = %q, want %q", v.Title, "Solo")
	}

	if _, err := Lookup("missing"); err == nil {
		t.Error("Lookup(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Variant{ID: "test_dup", MinPlayers: 1})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Variant{ID: "test_dup", MinPlayers: 1})
}

func TestListSorted(t *testing.T) {
	Register(Variant{ID: "test_b", MinPlayers: 1})
	Register(Variant{ID: "test_a", MinPlayers: 1})

	var ids []string
	for _, v := range List() {
		if strings.HasPrefix(v.ID, "test_") {
			ids = append(ids, v.ID)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestResolvePlayers(t *testing.T) {
	v := Variant{ID: "seats", MinPlayers: 2, MaxPlayers: 4, DefaultPlayers: []string{"P1", "P2"}}

	tests := []struct {
		name    string
		input   []string
		want    int
		wantErr bool
	}{
		{"defaults", nil, 2, false},
		{"explicit", []string{"a", "b", "c"}, 3, false},
		{"too few", []string{"a"}, 0, true},
		{"too many", []string{"a", "b", "c", "d", "e"}, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.ResolvePlayers(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ResolvePlayers(%v) expected error", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePlayers(%v) failed: %v", tc.input, err)
			}
			if len(got) != tc.want {
				t.Errorf("ResolvePlayers(%v) = %v, want %d players", tc.input, got, tc.want)
			}
		})
	}
}
