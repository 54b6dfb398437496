package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// GameResult represents the outcome of a single finished game
type GameResult struct {
	Won      bool
	Attempts int           // Guesses used, including the winning one
	Duration time.Duration // Wall time from first draw to last guess
	Seed     int64         // RNG seed for this game (for replay)
}

// Statistics aggregates finished games
type Statistics struct {
	Games  int
	Wins   int
	Losses int

	// Win-only aggregates; losses always use every attempt so they would
	// only dilute these.
	SumAttempts  int
	SumAttempts2 int
	Values       []float64 // attempts per win, for median/percentile
	BestAttempts int
	WorstWin     int

	// Histogram of winning attempt numbers, index 0 unused
	AttemptHistogram []int

	TotalDuration time.Duration
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.TotalDuration += result.Duration

	if !result.Won {
		s.Losses++
		return
	}

	s.Wins++
	s.SumAttempts += result.Attempts
	s.SumAttempts2 += result.Attempts * result.Attempts
	s.Values = append(s.Values, float64(result.Attempts))

	if s.BestAttempts == 0 || result.Attempts < s.BestAttempts {
		s.BestAttempts = result.Attempts
	}
	if result.Attempts > s.WorstWin {
		s.WorstWin = result.Attempts
	}

	for len(s.AttemptHistogram) <= result.Attempts {
		s.AttemptHistogram = append(s.AttemptHistogram, 0)
	}
	s.AttemptHistogram[result.Attempts]++
}

// Merge folds other into s. Used to combine per-worker results.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.SumAttempts += other.SumAttempts
	s.SumAttempts2 += other.SumAttempts2
	s.Values = append(s.Values, other.Values...)
	s.TotalDuration += other.TotalDuration

	if other.BestAttempts > 0 && (s.BestAttempts == 0 || other.BestAttempts < s.BestAttempts) {
		s.BestAttempts = other.BestAttempts
	}
	if other.WorstWin > s.WorstWin {
		s.WorstWin = other.WorstWin
	}
	for len(s.AttemptHistogram) < len(other.AttemptHistogram) {
		s.AttemptHistogram = append(s.AttemptHistogram, 0)
	}
	for i, n := range other.AttemptHistogram {
		s.AttemptHistogram[i] += n
	}
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Mean returns the average number of attempts per win
func (s *Statistics) Mean() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.SumAttempts) / float64(s.Wins)
}

// Variance returns the sample variance of attempts per win
func (s *Statistics) Variance() float64 {
	if s.Wins < 2 {
		return 0
	}
	mean := s.Mean()
	return (float64(s.SumAttempts2) - float64(s.Wins)*mean*mean) / float64(s.Wins-1)
}

// StdDev returns the sample standard deviation of attempts per win
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the median attempts per win
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the attempts at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the aggregates are internally consistent
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses != s.Games {
		return fmt.Errorf("wins (%d) + losses (%d) does not match games (%d)", s.Wins, s.Losses, s.Games)
	}
	if len(s.Values) != s.Wins {
		return fmt.Errorf("values array length (%d) does not match wins (%d)", len(s.Values), s.Wins)
	}
	histogram := 0
	for _, n := range s.AttemptHistogram {
		histogram += n
	}
	if histogram != s.Wins {
		return fmt.Errorf("histogram total (%d) does not match wins (%d)", histogram, s.Wins)
	}
	return nil
}

// Summary renders a short multi-line report
func (s *Statistics) Summary() string {
	if s.Games == 0 {
		return "No games played"
	}
	out := fmt.Sprintf("Games: %d  Won: %d  Lost: %d  Win rate: %.1f%%",
		s.Games, s.Wins, s.Losses, s.WinRate()*100)
	if s.Wins > 0 {
		out += fmt.Sprintf("\nGuesses per win: mean %.2f, median %.1f, stddev %.2f, best %d, worst %d",
			s.Mean(), s.Median(), s.StdDev(), s.BestAttempts, s.WorstWin)
	}
	return out
}
