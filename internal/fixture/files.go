package fixture

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
)

// Paths names the two artifacts of a fixture pair.
type Paths struct {
	Input  string
	Output string
}

// WriteFiles renders records and replaces both artifacts. Each file is
// swapped in atomically, so a reader never observes a half-written file.
func WriteFiles(ctx context.Context, paths Paths, records []Record) error {
	var input, output bytes.Buffer
	if err := Write(&input, &output, records); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)
	for _, f := range []struct {
		path string
		data *bytes.Buffer
	}{
		{paths.Input, &input},
		{paths.Output, &output},
	} {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return err
		}
		if err := atomic.WriteFile(f.path, f.data); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
		logger.Debug().Str("path", f.path).Msg("wrote fixture artifact")
	}
	return nil
}

// ReadFiles decodes the fixture pair stored at paths.
func ReadFiles(paths Paths) ([]Record, error) {
	input, err := os.Open(paths.Input)
	if err != nil {
		return nil, err
	}
	defer input.Close()

	output, err := os.Open(paths.Output)
	if err != nil {
		return nil, err
	}
	defer output.Close()

	return Read(input, output)
}
