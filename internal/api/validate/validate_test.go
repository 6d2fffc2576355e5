package validate

import "testing"

func TestDate(t *testing.T) {
	if err := Date("2025-03-10"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"", "10-03-2025", "2025-3-1", "2025-03-10T00:00:00Z"} {
		if err := Date(bad); err == nil {
			t.Errorf("Date(%q) accepted", bad)
		}
	}
}

func TestLimit(t *testing.T) {
	n, err := Limit("", 5, 50)
	if err != nil || n != 5 {
		t.Fatalf("default: got %d, %v", n, err)
	}
	n, err = Limit("10", 5, 50)
	if err != nil || n != 10 {
		t.Fatalf("explicit: got %d, %v", n, err)
	}
	n, err = Limit("999", 5, 50)
	if err != nil || n != 50 {
		t.Fatalf("cap: got %d, %v", n, err)
	}
	for _, bad := range []string{"0", "-1", "abc"} {
		if _, err := Limit(bad, 5, 50); err == nil {
			t.Errorf("Limit(%q) accepted", bad)
		}
	}
}
