package bench

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/pairstore/codec"
)

// Op names a timed phase.
type Op string

const (
	// OpInsert is a phase of single inserts into an empty map.
	OpInsert Op = "insert"
	// OpBulkInsert is one BulkInsert of the whole workload into an empty map.
	OpBulkInsert Op = "bulk_insert"
	// OpLookup looks up every workload key in the map filled by OpInsert.
	OpLookup Op = "lookup"
	// OpBulkLookup looks up every workload key in the map filled by
	// OpBulkInsert.
	OpBulkLookup Op = "bulk_lookup"
)

// Result is the outcome of one timed phase.
type Result struct {
	Impl     string        `json:"impl"`
	Workload Kind          `json:"workload"`
	Op       Op            `json:"op"`
	Ops      int           `json:"ops"`
	Duration time.Duration `json:"duration_ns"`
	Len      int           `json:"len"`
	Misses   int           `json:"misses,omitempty"`
	Verified bool          `json:"verified"`
	Err      string        `json:"error,omitempty"`
}

// NsPerOp returns the average duration of one operation in nanoseconds.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Duration.Nanoseconds()) / float64(r.Ops)
}

// WorkloadSummary describes a workload used in a run.
type WorkloadSummary struct {
	Kind Kind  `json:"kind"`
	Ops  int   `json:"ops"`
	Seed int64 `json:"seed"`
	KeyStats
}

// Report collects the results of one Runner.Run.
type Report struct {
	RunID     string            `json:"run_id"`
	Started   time.Time         `json:"started"`
	Hardware  Hardware          `json:"hardware"`
	Workloads []WorkloadSummary `json:"workloads"`
	Results   []Result          `json:"results"`
}

// Failed returns the results that errored or did not verify.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != "" || !res.Verified {
			out = append(out, res)
		}
	}
	return out
}

// WriteTable prints the results as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "WORKLOAD\tIMPL\tOP\tOPS\tDURATION\tNS/OP\tLEN\tOK\t")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%.1f\t%d\t%t\t\n",
			res.Workload,
			res.Impl,
			res.Op,
			res.Ops,
			res.Duration.Round(time.Microsecond),
			res.NsPerOp(),
			res.Len,
			res.Verified && res.Err == "",
		)
	}
	return tw.Flush()
}

// WriteFile encodes the report with c and writes it to path.
//
// The file is compressed according to its extension: ".zst" uses zstd,
// ".lz4" uses lz4 frames, anything else is written as is.
func (r *Report) WriteFile(path string, c codec.Codec) (err error) {
	if c == nil {
		c = codec.Default
	}
	data, err := c.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	w, err := compressWriter(path, f)
	if err != nil {
		return fmt.Errorf("report compressor: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// ReadReport reads a report written by Report.WriteFile.
func ReadReport(path string, c codec.Codec) (*Report, error) {
	if c == nil {
		c = codec.Default
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	rc, err := decompressReader(path, f)
	if err != nil {
		return nil, fmt.Errorf("report decompressor: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var rep Report
	if err := c.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compressWriter(path string, w io.Writer) (io.WriteCloser, error) {
	switch filepath.Ext(path) {
	case ".zst":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case ".lz4":
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

func decompressReader(path string, r io.Reader) (io.ReadCloser, error) {
	switch filepath.Ext(path) {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}
