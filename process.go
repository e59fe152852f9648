package ngram

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readBufferSize     = 64 * 1024
	defaultMaxLineSize = 16 * 1024 * 1024
)

// Result is one successfully tokenized line of a JSONL stream.
type Result struct {
	Line   int      `json:"line"`
	ID     string   `json:"id"`
	Ngrams []string `json:"ngrams"`
	Label  int      `json:"label"`
}

type ProcessOption struct {
	// Workers is the number of lines tokenized in parallel. Defaults to 1.
	Workers     int
	// MaxLineSize is the longest line accepted, in bytes without the newline.
	// Longer lines are skipped as malformed. Defaults to 16 MiB.
	MaxLineSize int
	Logger      *zap.Logger
}

type lineOutcome struct {
	line   int
	result Result
	err    error
}

// ProcessReader tokenizes every non-blank line of r. Lines that are not valid
// records, or are longer than MaxLineSize, are skipped and logged; they are
// reported together as a *CombinedError of *LineError next to the results of
// the other lines.
// Results keep input order for any worker count.
func (t *Tokenizer) ProcessReader(ctx context.Context, r io.Reader, opt ...ProcessOption) ([]Result, error) {
	var option ProcessOption
	if len(opt) > 0 {
		option = opt[0]
	}
	if option.Workers < 1 {
		option.Workers = 1
	}
	if option.MaxLineSize < 1 {
		option.MaxLineSize = defaultMaxLineSize
	}
	if option.Logger == nil {
		option.Logger = zap.NewNop()
	}

	reader := bufio.NewReaderSize(r, readBufferSize)

	var group errgroup.Group
	group.SetLimit(option.Workers)

	var outcomes []*lineOutcome
	var readErr error
	lineNo := 0
	for {
		data, tooLong, err := readLine(reader, option.MaxLineSize)
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = err
			break
		}
		lineNo++
		if ctx.Err() != nil {
			break
		}
		if tooLong {
			outcomes = append(outcomes, &lineOutcome{
				line: lineNo,
				err:  malformed("line exceeds %d bytes", option.MaxLineSize),
			})
			continue
		}
		line := bytes.TrimSpace(data)
		if len(line) == 0 {
			continue
		}
		outcome := &lineOutcome{line: lineNo}
		outcomes = append(outcomes, outcome)
		group.Go(func() error {
			record, err := ParseRecord(line)
			if err != nil {
				outcome.err = err
				return nil
			}
			outcome.result = Result{
				Line:   outcome.line,
				ID:     record.ID,
				Ngrams: t.TokenizeRecord(record),
				Label:  record.Label,
			}
			return nil
		})
	}
	group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, fmt.Errorf("read error after line %d: %w", lineNo, readErr)
	}

	combined := &CombinedError{Message: "skipped lines"}
	results := make([]Result, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			option.Logger.Warn("skip line", zap.Int("line", outcome.line), zap.Error(outcome.err))
			combined.append(&LineError{Line: outcome.line, Err: outcome.err})
			continue
		}
		results = append(results, outcome.result)
	}
	return results, combined.errorOrNil()
}

// readLine returns the next line of br, newline included. A line longer than
// maxSize is read through to its end and returned as tooLong with no data.
// io.EOF is returned only when no bytes are left.
func readLine(br *bufio.Reader, maxSize int) ([]byte, bool, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimSuffix(line, []byte{'\n'})) > maxSize {
				tooLong = true
				line = nil
			}
		}
		switch err {
		case bufio.ErrBufferFull:
			continue
		case nil:
			return line, tooLong, nil
		case io.EOF:
			if len(line) == 0 && !tooLong {
				return nil, false, io.EOF
			}
			return line, tooLong, nil
		default:
			return nil, false, err
		}
	}
}
