package raw

import "testing"

func TestGet_PrefixAndTrim(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("GITSCOUT_LOG_FORMAT", "json")

	log := New().Prefix("LOG_")
	nested := New().Prefix("GITSCOUT_").Prefix("LOG_")

	if got := log.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("LEVEL = %q", got)
	}
	if got := nested.Get("FORMAT", "console"); got != "json" {
		t.Fatalf("nested FORMAT = %q", got)
	}
	if got := log.Get("SERVICE", "gitscout"); got != "gitscout" {
		t.Fatalf("default not used: %q", got)
	}
}

func TestGetBool_Variants(t *testing.T) {
	log := New().Prefix("LOG_")

	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"  true  ", false, true},
		{"", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("LOG_CALLER", tt.val)
			if got := log.GetBool("CALLER", tt.def); got != tt.want {
				t.Fatalf("GetBool(%q, %v) = %v", tt.val, tt.def, got)
			}
		})
	}
}

func TestGetInt_RejectsGarbageAndNegatives(t *testing.T) {
	log := New().Prefix("LOG_")

	tests := []struct {
		name string
		val  string
		def  int
		want int
	}{
		{"numeric", "10", 0, 10},
		{"trimmed", "  7  ", 1, 7},
		{"garbage", "10x", 9, 9},
		{"negative", "-5", 3, 3},
		{"unset", "", 11, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_SAMPLE_EVERY", tt.val)
			if got := log.GetInt("SAMPLE_EVERY", tt.def); got != tt.want {
				t.Fatalf("GetInt(%q, %d) = %d", tt.val, tt.def, got)
			}
		})
	}
}
