package manifest

import "testing"

func TestParseValid(t *testing.T) {
	m, err := Parse("walrus-core@1.2.3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Name != "walrus-core" {
		t.Errorf("Name = %q, want %q", m.Name, "walrus-core")
	}
	if m.Version.String() != "1.2.3" {
		t.Errorf("Version = %s, want 1.2.3", m.Version)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	m, err := Parse("  walrus-core  @  1.2.3 ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m.Name != "walrus-core" {
		t.Errorf("Name = %q, want %q", m.Name, "walrus-core")
	}
}

func TestParseRejectsMissingAt(t *testing.T) {
	if _, err := Parse("walrus-core 1.2.3"); err == nil {
		t.Error("Parse() on text with no \"@\" returned nil error")
	}
}

func TestParseRejectsEmptyName(t *testing.T) {
	if _, err := Parse("@1.2.3"); err == nil {
		t.Error("Parse() with empty name returned nil error")
	}
}

func TestParseRejectsBadVersion(t *testing.T) {
	if _, err := Parse("walrus-core@not-a-version"); err == nil {
		t.Error("Parse() with invalid version returned nil error")
	}
}

func TestSatisfies(t *testing.T) {
	m, err := Parse("walrus-core@1.2.3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		constraint string
		want       bool
	}{
		{">= 1.0, < 2.0", true},
		{">= 2.0", false},
		{"^1.2", true},
		{"1.x", true},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			got, err := m.Satisfies(tt.constraint)
			if err != nil {
				t.Fatalf("Satisfies(%q) error = %v", tt.constraint, err)
			}
			if got != tt.want {
				t.Errorf("Satisfies(%q) = %v, want %v", tt.constraint, got, tt.want)
			}
		})
	}
}

func TestSatisfiesRejectsBadConstraint(t *testing.T) {
	m, _ := Parse("walrus-core@1.0.0")
	if _, err := m.Satisfies("not a constraint"); err == nil {
		t.Error("Satisfies() with invalid constraint returned nil error")
	}
}
