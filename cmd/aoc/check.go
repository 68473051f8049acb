package main

import (
	"errors"
	"fmt"

	"github.com/helixml/aoc2023/application/service"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/infrastructure/report"
	"github.com/spf13/cobra"
)

// errChecksFailed is returned when at least one example disagrees with its
// published answer, so the process exits non-zero.
var errChecksFailed = errors.New("examples failed")

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: "Solve the published examples",
		Long:  `Solve the published examples of the given days, or of every day when none are given, and compare them with the published answers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]puzzle.Day, 0, len(args))
			for _, arg := range args {
				day, err := puzzle.ParseDay(arg)
				if err != nil {
					return err
				}
				days = append(days, day)
			}

			s, err := newSession(cmd.Context(), flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			results, err := s.client.Check(s.ctx, days...)
			if encErr := s.encoder.Checks(checkRecords(results)); encErr != nil {
				return encErr
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.Passed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
			}
			s.logger.Slog().InfoContext(s.ctx, "examples passed", "count", len(results))
			return nil
		},
	}
}

func checkRecords(results []service.SampleResult) []report.CheckRecord {
	records := make([]report.CheckRecord, len(results))
	for i, r := range results {
		records[i] = report.CheckRecord{
			Day:    int(r.Key.Day),
			Part:   int(r.Key.Part),
			Sample: r.Name,
			Want:   r.Want,
			Got:    r.Got,
			Passed: r.Passed(),
		}
		if r.Err != nil {
			records[i].Error = r.Err.Error()
		}
	}
	return records
}
