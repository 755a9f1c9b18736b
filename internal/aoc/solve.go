package aoc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sonarsweep/internal/config"
	"sonarsweep/internal/dive"
	"sonarsweep/internal/input"
	"sonarsweep/internal/sonar"
)

// SolveDay1 counts depth increases in the sweep at path, first reading by
// reading and then over windows of the given size.
func SolveDay1(path string, window int, logger *zap.Logger) ([]Answer, error) {
	depths, err := input.LoadDepths(path, logger)
	if err != nil {
		return nil, err
	}

	plain, err := sonar.CountIncreases(depths)
	if err != nil {
		return nil, fmt.Errorf("day 1, part 1: %w", err)
	}
	windowed, err := sonar.CountWindowedIncreases(depths, window)
	if err != nil {
		return nil, fmt.Errorf("day 1, part 2: %w", err)
	}
	logger.Debug("day 1 solved",
		zap.Int("depths", len(depths)),
		zap.Int("window", window),
		zap.Int("increases", plain),
		zap.Int("windowed_increases", windowed))

	return []Answer{
		{Day: 1, Part: 1, Value: plain},
		{Day: 1, Part: 2, Value: windowed},
	}, nil
}

// SolveDay2 follows the course at path, first with direct depth changes and
// then with aim.
func SolveDay2(path string, logger *zap.Logger) ([]Answer, error) {
	moves, err := input.LoadCourse(path, logger)
	if err != nil {
		return nil, err
	}

	direct := dive.Track(moves)
	aimed := dive.TrackAim(moves)
	logger.Debug("day 2 solved",
		zap.Int("moves", len(moves)),
		zap.Stringer("position", direct),
		zap.Stringer("aimed_position", aimed))

	return []Answer{
		{Day: 2, Part: 1, Value: direct.Product()},
		{Day: 2, Part: 2, Value: aimed.Product()},
	}, nil
}

// SolveAll runs both days concurrently. Answers come back in day order; the
// first failure wins.
func SolveAll(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]Answer, error) {
	var day1, day2 []Answer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		day1, err = SolveDay1(cfg.Depths.Input, cfg.Depths.Window, logger.With(zap.Int("day", 1)))
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		day2, err = SolveDay2(cfg.Course.Input, logger.With(zap.Int("day", 2)))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return append(day1, day2...), nil
}
