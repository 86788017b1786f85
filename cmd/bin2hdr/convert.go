package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/config"
	"github.com/Faultbox/bin2hdr/internal/logger"
	"github.com/Faultbox/bin2hdr/pkg/arraylit"
	"github.com/Faultbox/bin2hdr/pkg/blob"
)

// ErrVerifyFailed is returned when a written document does not decode back to
// the input bytes.
var ErrVerifyFailed = errors.New("verification failed")

// Job describes one conversion.
type Job struct {
	Input  string
	Output string // empty selects arraylit.OutputPath
	Verify bool
}

// Result reports a finished conversion.
type Result struct {
	Output  string
	Input   int64 // bytes read
	Written int64 // bytes of document text
}

// Run reads job.Input, writes its array document and reports progress to
// stdout. The output file only appears once it has been written completely.
func Run(enc config.EncoderConfig, job Job, stdout io.Writer) (*Result, error) {
	doc, err := enc.Document(job.Input)
	if err != nil {
		return nil, err
	}

	out := job.Output
	if out == "" {
		out = arraylit.OutputPath(job.Input, doc.Format)
	}

	fmt.Fprintf(stdout, "Input file\t'%s'\n", job.Input)
	fmt.Fprintf(stdout, "Output file\t'%s'\n", out)

	limit := enc.MaxInputBytes
	if limit <= 0 {
		limit = blob.DefaultLimit
	}
	data, err := blob.ReadWithLimit(job.Input, limit)
	if err != nil {
		return nil, err
	}
	logger.Debug("input read", zap.String("path", job.Input), logger.Size("size", int64(len(data))))

	n, err := writeAtomic(out, func(w io.Writer) (int64, error) {
		return arraylit.Emit(w, data, doc)
	})
	if err != nil {
		return nil, err
	}

	if job.Verify {
		if err := verify(out, data); err != nil {
			return nil, err
		}
		logger.Debug("output verified", zap.String("path", out))
	}

	fmt.Fprintf(stdout, "%d bytes written.\n", len(data))
	logger.Info("array document written",
		zap.String("output", out),
		zap.Stringer("format", doc.Format),
		logger.Size("input", int64(len(data))),
		logger.Size("document", n),
	)
	return &Result{Output: out, Input: int64(len(data)), Written: n}, nil
}

// writeAtomic writes through a temp file next to path and renames it into
// place when write succeeds.
func writeAtomic(path string, write func(io.Writer) (int64, error)) (n int64, err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	n, err = write(tmp)
	err = multierr.Combine(err, tmp.Chmod(0o644), tmp.Close())
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return n, fmt.Errorf("creating output: %w", err)
	}
	return n, nil
}

func verify(path string, want []byte) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	dec, err := arraylit.Parse(f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if len(dec.Data) != len(want) {
		return fmt.Errorf("%w: decoded %d bytes, want %d", ErrVerifyFailed, len(dec.Data), len(want))
	}
	for i := range want {
		if dec.Data[i] != want[i] {
			return fmt.Errorf("%w: byte %d is 0x%02X, want 0x%02X", ErrVerifyFailed, i, dec.Data[i], want[i])
		}
	}
	return nil
}
