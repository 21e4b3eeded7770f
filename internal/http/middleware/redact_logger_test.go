package middleware

import (
	"strings"
	"testing"
)

func maskedSet(extra ...string) map[string]struct{} {
	m := map[string]struct{}{
		"sessiontoken": {},
		"token":        {},
	}
	for _, p := range extra {
		m[strings.ToLower(p)] = struct{}{}
	}
	return m
}

func TestMaskQuery_MasksTokenParams(t *testing.T) {
	raw := "sessionToken=141add05-4415-4938-b5a1-17e0d3171aff&startDate=2025-03-01"
	got := maskQuery(raw, maskedSet())

	if strings.Contains(got, "141add05") {
		t.Fatalf("token leaked: %q", got)
	}
	if !strings.Contains(got, "sessionToken=[REDACTED]") {
		t.Fatalf("token not masked: %q", got)
	}
	if !strings.Contains(got, "startDate=2025-03-01") {
		t.Fatalf("benign param mangled: %q", got)
	}
}

func TestMaskQuery_CaseInsensitiveKey(t *testing.T) {
	got := maskQuery("TOKEN=secret&x=1", maskedSet())
	if strings.Contains(got, "secret") {
		t.Fatalf("token leaked: %q", got)
	}
}

func TestMaskQuery_PreservesOrder(t *testing.T) {
	got := maskQuery("a=1&token=s&b=2", maskedSet())
	if got != "a=1&token=[REDACTED]&b=2" {
		t.Fatalf("got %q", got)
	}
}

func TestMaskQuery_UnparseableIsMaskedWholesale(t *testing.T) {
	// Invalid percent-encoding in a key: mask everything rather than guess.
	got := maskQuery("%zz=token&x=1", maskedSet())
	if got != "[REDACTED]" {
		t.Fatalf("got %q", got)
	}
}

func TestMaskQuery_ExtraParams(t *testing.T) {
	got := maskQuery("displayName=Alex&x=1", maskedSet("displayname"))
	if strings.Contains(got, "Alex") {
		t.Fatalf("extra param leaked: %q", got)
	}
}

func TestMaskQuery_Empty(t *testing.T) {
	if got := maskQuery("", maskedSet()); got != "" {
		t.Fatalf("got %q", got)
	}
}
