package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/simonhull/iqsource"
)

// Useful diagnostic tool: resolves a capture file's stream parameters
// and dumps per-snapshot power statistics.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: iq-dump <capture-file> [snapshots]")
		fmt.Println(iqsource.Usage)
		os.Exit(1)
	}

	snapshots := 8
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			snapshots = n
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "iq-dump",
	})

	// Defaults only matter for raw files with unparseable names.
	src, err := iqsource.Open(os.Args[1], iqsource.Config{
		SamplesPerRead: 4096,
		Encoding:       iqsource.Encoding16tle,
		SampleRateHz:   48000,
	}, iqsource.WithLogger(slog.New(logger)))
	if err != nil {
		logger.Fatal("open failed", "error", err)
	}
	defer src.Close()

	info := src.Info()
	logger.Info("stream parameters",
		"encoding", info.Encoding.String(),
		"sample_rate_hz", info.SampleRateHz,
		"centre_frequency_hz", info.CentreFrequencyHz,
		"origin", info.Origin.String(),
		"bytes_per_snapshot", src.BytesPerSnapshot())

	for i := 0; i < snapshots; i++ {
		snap, err := src.Read()
		if errors.Is(err, iqsource.ErrEndOfStream) {
			logger.Info("end of stream", "snapshots_read", i)
			return
		}
		if err != nil {
			logger.Fatal("read failed", "error", err)
		}

		var sum, peak float64
		for _, c := range snap.Samples {
			p := float64(real(c)*real(c) + imag(c)*imag(c))
			sum += p
			if p > peak {
				peak = p
			}
		}

		logger.Info("snapshot",
			"index", i,
			"samples", len(snap.Samples),
			"rx_time", snap.Time.Format(time.RFC3339Nano),
			"mean_power", sum/float64(len(snap.Samples)),
			"peak_power", peak)
	}
}
