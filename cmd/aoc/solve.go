package main

import (
	"os"
	"os/signal"
	"syscall"

	aoc "github.com/helixml/aoc2023"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/infrastructure/input"
	"github.com/spf13/cobra"
)

func solveCmd(flags *globalFlags) *cobra.Command {
	var (
		part      int
		inputPath string
		noSamples bool
	)

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve a day's puzzle",
		Long: `Solve a day's puzzle against its input.

The input is read from --input, "-" for stdin, or from the input directory as
day05.txt falling back to 5.input. Both parts are solved unless --part is
given. Each part's examples are solved first and a wrong example answer stops
the run.`,
		Example: `  aoc solve 5
  aoc solve 5 --part 2 --input ~/aoc/day05.txt
  cat day07.txt | aoc solve 7 --input - --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := puzzle.ParseDay(args[0])
			if err != nil {
				return err
			}

			var parts []puzzle.Part
			if cmd.Flags().Changed("part") {
				p, err := puzzle.ParsePart(cmd.Flag("part").Value.String())
				if err != nil {
					return err
				}
				parts = []puzzle.Part{p}
			}

			var extra []aoc.Option
			if noSamples {
				extra = append(extra, aoc.WithSampleChecks(false))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := newSession(ctx, flags, cmd.OutOrStdout(), extra...)
			if err != nil {
				return err
			}
			return runSolve(s, cmd, day, parts, inputPath)
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve: 1 or 2 (default: both)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", `Input file, or "-" for stdin (default: from the input directory)`)
	cmd.Flags().BoolVar(&noSamples, "no-samples", false, "Skip solving the examples first")

	return cmd
}

func runSolve(s *session, cmd *cobra.Command, day puzzle.Day, parts []puzzle.Part, inputPath string) error {
	text, err := readInput(s, cmd, day, inputPath)
	if err != nil {
		return err
	}

	var answers []puzzle.Answer
	if len(parts) == 0 {
		answers, err = s.client.SolveDayInput(s.ctx, day, text)
	} else {
		var a puzzle.Answer
		a, err = s.client.SolveInput(s.ctx, day, parts[0], text)
		if err == nil {
			answers = append(answers, a)
		}
	}

	if encErr := s.encoder.Answers(answers); encErr != nil {
		return encErr
	}
	return err
}

func readInput(s *session, cmd *cobra.Command, day puzzle.Day, path string) (string, error) {
	switch path {
	case "":
		return s.client.Input(day)
	case "-":
		return input.Read(cmd.InOrStdin())
	default:
		return input.File(path)
	}
}
