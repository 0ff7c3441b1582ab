package shortcut

import "testing"

func TestAddRejectsWrongLength(t *testing.T) {
	idx := New(8)
	err := idx.Add("short")
	if err == nil {
		t.Fatal("Add should reject a shortcut whose length != Size()")
	}
	var lenErr *LengthError
	if !asLengthError(err, &lenErr) {
		t.Fatalf("Add returned %T, want *LengthError", err)
	}
}

func asLengthError(err error, target **LengthError) bool {
	le, ok := err.(*LengthError)
	if ok {
		*target = le
	}
	return ok
}

func TestScanFindsAlignedCandidate(t *testing.T) {
	idx := New(8)
	if err := idx.Add("ads.com/"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	url := "http://cdn.example.com/ads.com/banner.js"
	var hits []Candidate
	idx.Scan(url, func(c Candidate) bool {
		hits = append(hits, c)
		return false
	})

	found := false
	for _, h := range hits {
		if h.Shortcut == "ads.com/" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Scan did not surface the embedded shortcut, hits=%v", hits)
	}
}

func TestScanShortURLNoPanic(t *testing.T) {
	idx := New(8)
	idx.Add("ads.com/")
	idx.Scan("short", func(Candidate) bool {
		t.Fatal("Scan should not visit candidates when url shorter than Size()")
		return true
	})
}

func TestScanStopsOnVisitTrue(t *testing.T) {
	idx := New(8)
	idx.Add("ads.com/")
	idx.Add("ads.com/")

	calls := 0
	idx.Scan("http://x/ads.com/y/ads.com/", func(Candidate) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Fatalf("Scan called visit %d times after stop request, want 1", calls)
	}
}
