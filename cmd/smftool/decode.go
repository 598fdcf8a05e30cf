package main

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type result struct {
	name string
	file *midi.File
	err  error
}

func readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}

func decodeFile(name string, opts ...midi.Option) *result {
	out := &result{name: name}

	data, err := readFile(name)
	if err != nil {
		out.err = err
		return out
	}

	out.file, out.err = midi.Decode(data, opts...)
	return out
}

// errorKind names the class of a decode failure and, when known, the byte
// offset it happened at.
func errorKind(err error) (string, *int) {
	var (
		eof       *midi.EOFError
		undefined *midi.UndefinedMessageCodeError
		format    *midi.UndefinedFileFormatError
		length    *midi.WrongHeaderLengthError
		division  *midi.UnsupportedDivisionError
	)

	switch {
	case errors.As(err, &eof):
		return "eof", &eof.Position
	case errors.As(err, &undefined):
		return "undefined_message_code", &undefined.Position
	case errors.As(err, &format):
		return "undefined_file_format", nil
	case errors.As(err, &length):
		return "wrong_header_length", nil
	case errors.As(err, &division):
		return "unsupported_division", nil
	}
	return "io", nil
}

func isMidiFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".mid" || ext == ".midi"
}

// walkPaths expands directories to the MIDI files below them. Plain file
// arguments are kept as given.
func walkPaths(args []string) ([]string, error) {
	var res []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", arg)
		}
		if !info.IsDir() {
			res = append(res, arg)
			continue
		}

		walk := func(s string, d fs.DirEntry, err error) error {
			if err != nil {
				return errors.Wrapf(err, "walk %s", s)
			}
			if !d.IsDir() && isMidiFile(s) {
				res = append(res, s)
			}
			return nil
		}
		if err := filepath.WalkDir(arg, walk); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// readList sends the given paths, then every non-empty line of list.
// list may be nil.
func readList(ctx context.Context, paths []string, list io.Reader) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		send := func(path string) bool {
			select {
			case out <- path:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for _, path := range paths {
			if !send(path) {
				return
			}
		}

		if list == nil {
			return
		}

		scanner := bufio.NewScanner(list)
		scanner.Split(bufio.ScanLines)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !send(line) {
				return
			}
		}
	}()

	return out
}

func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int, opts ...midi.Option) (<-chan *result, <-chan struct{}) {
	out := make(chan *result)
	done := make(chan struct{}, 1)
	log := decodeWorkerLog

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				log.Debug("context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				select {
				case out <- decodeFile(path, opts...):
				case <-ctx.Done():
					log.Debug("decodeFile context done", zap.String("name", path))
				}
				<-goroutines

			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
