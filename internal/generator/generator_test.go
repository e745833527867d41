package generator

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"
)

var vector = ulid.FromBytes([16]byte{1, 103, 245, 214, 154, 12, 107, 200, 228, 194, 102, 58, 236, 82, 247, 87})

// stepClock returns start, start+1ms, start+2ms, ...
func stepClock(start int64) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := time.UnixMilli(next)
		next++
		return t
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":           FormatULID,
		"ulid":       FormatULID,
		"ULID-UPPER": FormatULIDUpper,
		" uuid ":     FormatUUID,
		"canonical":  FormatCanonical,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("parse format %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse format %q: got %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("snowflake"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFormatWithCase(t *testing.T) {
	cases := []struct {
		in   Format
		c    ulid.Case
		want Format
	}{
		{FormatULID, ulid.Upper, FormatULIDUpper},
		{FormatULID, ulid.Lower, FormatULID},
		{FormatULIDUpper, ulid.Lower, FormatULID},
		{FormatULIDUpper, ulid.Upper, FormatULIDUpper},
	}
	for _, tc := range cases {
		got, err := tc.in.WithCase(tc.c)
		if err != nil {
			t.Fatalf("%s with %s: %v", tc.in, tc.c, err)
		}
		if got != tc.want {
			t.Fatalf("%s with %s: got %s, want %s", tc.in, tc.c, got, tc.want)
		}
	}
	for _, f := range []Format{FormatUUID, FormatCanonical} {
		if _, err := f.WithCase(ulid.Upper); err == nil {
			t.Fatalf("%s: expected error", f)
		}
	}
}

func TestRenderVector(t *testing.T) {
	cases := map[Format]string{
		FormatULID:      "05kzbnmt1hnwhs62crxermqqaw",
		FormatULIDUpper: "05KZBNMT1HNWHS62CRXERMQQAW",
		FormatUUID:      "0167f5d6-9a0c-6bc8-e4c2-663aec52f757",
		FormatCanonical: "01CZTXD6GCDF4E9GK67BP55XTQ",
	}
	for f, want := range cases {
		if got := f.Render(vector); got != want {
			t.Errorf("%s: got %q, want %q", f, got, want)
		}
		back, err := f.Decode(want)
		if err != nil {
			t.Fatalf("%s decode: %v", f, err)
		}
		if back != vector {
			t.Fatalf("%s decode: got %s", f, back)
		}
	}
}

func TestParseVector(t *testing.T) {
	g, err := NewULIDGenerator(Options{Format: FormatUUID})
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	res, err := g.Parse("0167f5d6-9a0c-6bc8-e4c2-663aec52f757")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.TimestampMs != 1546017741324 {
		t.Fatalf("timestamp: got %d", res.TimestampMs)
	}
	want := Fields{F1: 23590358, F2: 39436, F3: 27592, F4: 3837945402, F5: 3964860247}
	if res.Fields != want {
		t.Fatalf("fields: got %+v, want %+v", res.Fields, want)
	}
	if res.RandomPayload != "6bc8e4c2663aec52f757" {
		t.Fatalf("random payload: got %s", res.RandomPayload)
	}
	if res.Integer != "1869020765069383451833408194209838935" {
		t.Fatalf("integer: got %s", res.Integer)
	}
	if res.Lower != "05kzbnmt1hnwhs62crxermqqaw" || res.Format != FormatUUID {
		t.Fatalf("result: %+v", res)
	}
	if !res.Time.Equal(time.UnixMilli(1546017741324)) {
		t.Fatalf("time: got %v", res.Time)
	}
}

func TestValidate(t *testing.T) {
	g, err := NewULIDGenerator(Options{})
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	if ok, reason := g.Validate("05KZBNMT1HNWHS62CRXERMQQAW"); !ok {
		t.Fatalf("expected valid, got %q", reason)
	}

	cases := map[string]string{
		"05kzbnmt1hnwhs62crxermqqa":  "invalid ULID format: invalid length: expected 26, found 25",
		"05kzbnmt1hnwhs62crxermqqau": "invalid ULID format: invalid character: expected valid base32, found u at index 1",
	}
	for in, want := range cases {
		ok, reason := g.Validate(in)
		if ok {
			t.Fatalf("%q: expected invalid", in)
		}
		if reason != want {
			t.Fatalf("%q: got reason %q, want %q", in, reason, want)
		}
	}

	_, err = g.Parse("05kzbnmt1hnwhs62crxermqqa")
	if !errors.Is(err, ulid.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestSeededEntropyIsReproducible(t *testing.T) {
	run := func() []string {
		entropy, err := NewEntropy(EntropySeeded, 42)
		if err != nil {
			t.Fatalf("entropy: %v", err)
		}
		g, err := NewULIDGenerator(Options{Clock: stepClock(1_700_000_000_000), Entropy: entropy})
		if err != nil {
			t.Fatalf("new generator: %v", err)
		}
		ids, err := g.GenerateBatch(50)
		if err != nil {
			t.Fatalf("batch: %v", err)
		}
		return ids
	}

	a, b := run(), run()
	if !slices.Equal(a, b) {
		t.Fatal("expected identical batches for the same seed and clock")
	}
	if !slices.IsSorted(a) {
		t.Fatal("expected batch to sort by the stepped clock")
	}
	for _, id := range a {
		u, err := ulid.Parse(id)
		if err != nil {
			t.Fatalf("parse %q: %v", id, err)
		}
		if u.Millis() < 1_700_000_000_000 {
			t.Fatalf("unexpected millis %d", u.Millis())
		}
	}
}

func TestNewEntropyUnknownSource(t *testing.T) {
	if _, err := NewEntropy("dice", 0); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestConcurrentGenerate(t *testing.T) {
	reg, err := NewRegistry(nil, nil)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	g, _, err := reg.Get("ulid")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	const workers, each = 8, 200
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*each)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids, err := g.GenerateBatch(each)
			if err != nil {
				t.Errorf("batch: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*each {
		t.Fatalf("expected %d unique ids, got %d", workers*each, len(seen))
	}
}

func TestRegistry(t *testing.T) {
	entropy, err := NewEntropy(EntropySeeded, 7)
	if err != nil {
		t.Fatalf("entropy: %v", err)
	}
	reg, err := NewRegistry(stepClock(1), entropy)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if len(reg) != len(Formats) {
		t.Fatalf("expected %d generators, got %d", len(Formats), len(reg))
	}

	for _, f := range Formats {
		g, got, err := reg.Get(string(f))
		if err != nil {
			t.Fatalf("get %s: %v", f, err)
		}
		if got != f {
			t.Fatalf("get %s: resolved %s", f, got)
		}
		id, err := g.Generate()
		if err != nil {
			t.Fatalf("%s generate: %v", f, err)
		}
		if ok, reason := g.Validate(id); !ok {
			t.Fatalf("%s: generated %q is invalid: %s", f, id, reason)
		}
	}

	if _, _, err := reg.Get("ksuid"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
