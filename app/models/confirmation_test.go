package models

import "testing"

func TestTerminationPhrase(t *testing.T) {
	got := TerminationPhrase("Warung Sejahtera")
	want := "PUTUS KEMITRAAN Warung Sejahtera"
	if got != want {
		t.Errorf("TerminationPhrase = %q, want %q", got, want)
	}
}

func TestIsConfirmed_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  bool
	}{
		{"persis sama", "PUTUS KEMITRAAN Warung Sejahtera", true},
		{"case salah", "putus kemitraan Warung Sejahtera", false},
		{"trailing spasi", "PUTUS KEMITRAAN Warung Sejahtera ", false},
		{"leading spasi", " PUTUS KEMITRAAN Warung Sejahtera", false},
		{"substring", "PUTUS KEMITRAAN Warung", false},
		{"kosong", "", false},
		{"nama saja", "Warung Sejahtera", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTerminationChallenge("Warung Sejahtera", tt.typed)
			if got := c.IsConfirmed(); got != tt.want {
				t.Errorf("IsConfirmed(%q) = %v, want %v", tt.typed, got, tt.want)
			}
		})
	}
}
