package jvalue_test

import (
	stdjson "encoding/json"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/internal/testutil"
	"github.com/goccy/go-json"
)

func BenchmarkParse(b *testing.B) {
	input, _ := testutil.People(1, 500, true)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Std", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var v any
			if err := stdjson.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unmarshal: unexpected error: %v", err)
			}
		}
	})

	b.Run("GoJSON", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unmarshal: unexpected error: %v", err)
			}
		}
	})

	b.Run("Value", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := jvalue.ParseBytes(input); err != nil {
				b.Fatalf("ParseBytes: unexpected error: %v", err)
			}
		}
	})

	b.Run("Interface", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v, err := jvalue.ParseBytes(input)
			if err != nil {
				b.Fatalf("ParseBytes: unexpected error: %v", err)
			}
			jvalue.Interface(v)
		}
	})
}

func BenchmarkDecoder(b *testing.B) {
	input, _ := testutil.People(2, 200, false)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jvalue.ParseAll(input); err != nil {
			b.Fatalf("ParseAll: unexpected error: %v", err)
		}
	}
}
