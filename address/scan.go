package address

import (
	"context"
	"errors"
	"fmt"

	"github.com/ModChain/hdsecp256k1/ecckd"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxScanCount is the largest number of indices a single Scan will derive.
const MaxScanCount = 10000

// ErrScanTooLarge is returned when a scan asks for more than MaxScanCount
// indices.
var ErrScanTooLarge = errors.New("scan count exceeds limit")

// Scanner derives ranges of receive addresses below an account key.
type Scanner struct {
	params  *chaincfg.Params
	workers int
	logger  *logrus.Entry
	derive  func(*ecckd.ExtendedKey, uint32) (*ecckd.ExtendedKey, error)
}

// NewScanner returns a Scanner for the given network.  workers below 1 is
// treated as 1.
func NewScanner(params *chaincfg.Params, workers int, logger *logrus.Entry) *Scanner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Scanner{
		params:  params,
		workers: workers,
		logger:  logger.WithField("component", "scanner"),
		derive:  (*ecckd.ExtendedKey).Child,
	}
}

// Scan derives the receive addresses for count indices starting at start.
//
// Indices whose child key does not exist are left out of the result and
// logged; any other failure aborts the scan.  The result is ordered by index
// whatever the number of workers.  A range reaching past the last
// non-hardened index fails with ecckd.ErrIndexOutOfRange, and a count above
// MaxScanCount with ErrScanTooLarge, before anything is derived.
func (s *Scanner) Scan(ctx context.Context, ek *ecckd.ExtendedKey, start, count uint32) ([]Derived, error) {
	if count > MaxScanCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrScanTooLarge, count, MaxScanCount)
	}
	if uint64(start)+uint64(count) > uint64(ecckd.HardenedKeyStart) {
		return nil, fmt.Errorf("%w: range [%d, %d)", ecckd.ErrIndexOutOfRange,
			start, uint64(start)+uint64(count))
	}

	chain, err := ek.Child(0)
	if err != nil {
		return nil, fmt.Errorf("deriving receive chain: %w", err)
	}

	slots := make([]*Derived, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for j := uint32(0); j < count; j++ {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			index := start + j
			child, err := s.derive(chain, index)
			if ecckd.IsSkippable(err) {
				s.logger.WithFields(logrus.Fields{
					"index": index,
					"error": err,
				}).Debug("Skipping index")
				return nil
			}
			if err != nil {
				return err
			}
			d, err := fromChild(ek.Kind(), child, s.params)
			if err != nil {
				return err
			}
			slots[j] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]Derived, 0, count)
	for _, d := range slots {
		if d != nil {
			res = append(res, *d)
		}
	}
	s.logger.WithFields(logrus.Fields{
		"start":   start,
		"count":   count,
		"derived": len(res),
		"skipped": int(count) - len(res),
	}).Info("Scan complete")
	return res, nil
}
