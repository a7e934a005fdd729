package iqsource_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/iqsource"
)

// createBenchmarkCapture writes a raw 16tle capture holding the given
// number of full snapshots.
func createBenchmarkCapture(b *testing.B, samplesPerRead, snapshots int) string {
	b.Helper()

	data := make([]byte, samplesPerRead*4*snapshots)
	for i := range data {
		data[i] = byte(i)
	}

	path := filepath.Join(b.TempDir(), "bench.cplx.48000.16tle")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.Fatal(err)
	}
	return path
}

// BenchmarkOpen measures the performance of opening a single capture.
func BenchmarkOpen(b *testing.B) {
	path := createBenchmarkCapture(b, 4096, 1)
	cfg := cfg16tle(4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src, err := iqsource.Open(path, cfg)
		if err != nil {
			b.Fatal(err)
		}
		src.Close()
	}
}

// BenchmarkRead measures snapshot read-and-decode throughput.
func BenchmarkRead(b *testing.B) {
	path := createBenchmarkCapture(b, 4096, 64)
	src, err := iqsource.Open(path, cfg16tle(4096))
	if err != nil {
		b.Fatal(err)
	}
	defer src.Close()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := src.Read(); err != nil {
			b.StopTimer()
			if !src.Reconnect() {
				b.Fatal("rewind failed")
			}
			b.StartTimer()
		}
	}
}

// BenchmarkOpenMany measures concurrent capture opening performance.
func BenchmarkOpenMany(b *testing.B) {
	paths := make([]string, 10)
	for i := range paths {
		paths[i] = createBenchmarkCapture(b, 1024, 1)
	}
	ctx := context.Background()
	cfg := cfg16tle(1024)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sources, err := iqsource.OpenMany(ctx, cfg, paths...)
		if err != nil {
			b.Fatal(err)
		}
		for _, src := range sources {
			src.Close()
		}
	}
}
