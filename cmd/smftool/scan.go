package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	maxGoroutines = 10
)

var (
	listFlag     string
	parallelFlag int
	outFlag      string
)

var scanCmd = &cobra.Command{
	Use:   "scan [PATH...]",
	Short: "Decodes many files and reports note velocities",
	Long: `Decodes every .mid/.midi file found under the given paths and in the
list file, in parallel, and writes a JSON report of failures and of the
velocities seen per note, message kind and quarter position.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if parallelFlag <= 0 {
			return errors.Errorf("--parallel must be > 0, got %d", parallelFlag)
		}
		if len(args) == 0 && listFlag == "" {
			return errors.New("nothing to scan: pass paths or --list")
		}

		var list io.Reader
		if listFlag != "" {
			f, err := os.Open(listFlag)
			if err != nil {
				return errors.Wrapf(err, "open list %s", listFlag)
			}
			defer f.Close()
			list = f
		}

		paths, err := walkPaths(args)
		if err != nil {
			return err
		}

		rep, err := scan(cmd.Context(), paths, list, parallelFlag, decodeOptions()...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outFlag != "" {
			f, err := os.Create(outFlag)
			if err != nil {
				return errors.Wrapf(err, "create %s", outFlag)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rep), "write report")
	},
}

func init() {
	scanCmd.Flags().StringVarP(&listFlag, "list", "l", "",
		"The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	scanCmd.Flags().IntVarP(&parallelFlag, "parallel", "p", maxGoroutines,
		"Number of files processed in parallel, must be > 0")
	scanCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(scanCmd)
}

type failure struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Position *int   `json:"position,omitempty"`
	Detail   string `json:"detail"`
}

type scanReport struct {
	RunID          string                             `json:"run_id"`
	Files          int                                `json:"files"`
	Failed         int                                `json:"failed"`
	FailuresByKind map[string]int                     `json:"failures_by_kind"`
	Failures       []failure                          `json:"failures"`
	Velocities     map[uint8]map[string]map[int][]int `json:"velocities"`
}

func scan(parent context.Context, paths []string, list io.Reader, cntRoutines int, opts ...midi.Option) (*scanReport, error) {
	runID := uuid.New().String()
	log := cliLog.Named("scan").With(zap.String("run_id", runID))

	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, readList(ctx, paths, list), cntRoutines, opts...)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	rep := &scanReport{
		RunID:          runID,
		FailuresByKind: make(map[string]int),
	}
	m := make(noteMap)

	for result := range results {
		rep.Files++

		if result.err != nil {
			kind, pos := errorKind(result.err)
			log.Debug("failed", zap.String("name", result.name), zap.String("kind", kind), zap.Error(result.err))

			rep.Failed++
			rep.FailuresByKind[kind]++
			rep.Failures = append(rep.Failures, failure{
				Name:     result.name,
				Kind:     kind,
				Position: pos,
				Detail:   result.err.Error(),
			})
			continue
		}

		log.Debug("result", zap.String("name", result.name), zap.Int("tracks", len(result.file.Tracks)))
		m.addFile(result.name, result.file)
	}

	if err := parent.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(rep.Failures, func(a, b failure) bool { return a.Name < b.Name })
	rep.Velocities = m.report()

	kinds := maps.Keys(rep.FailuresByKind)
	slices.Sort(kinds)
	for _, kind := range kinds {
		log.Info("failures", zap.String("kind", kind), zap.Int("count", rep.FailuresByKind[kind]))
	}

	return rep, nil
}
