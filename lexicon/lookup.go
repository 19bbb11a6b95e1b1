package lexicon

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

// Lookup checks a batch of words, returning one result per word in the
// same order. It may block, for instance on a remote dictionary service.
type Lookup func(ctx context.Context, words []string) ([]bool, error)

// RetryDelay is the base delay between lookup attempts. It backs off
// exponentially.
var RetryDelay = 100 * time.Millisecond

// LocalLookup answers from an in-process lexicon.
func LocalLookup(lex Lexicon) Lookup {
	return func(ctx context.Context, words []string) ([]bool, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results := make([]bool, len(words))
		for i, w := range words {
			results[i] = lex.HasWord(w)
		}
		return results, nil
	}
}

// WithRetry retries a failing lookup up to attempts times in total. Context
// cancellation stops the retries.
func WithRetry(lookup Lookup, attempts uint) Lookup {
	if attempts == 0 {
		// retry-go treats zero attempts as unlimited
		attempts = 1
	}
	return func(ctx context.Context, words []string) ([]bool, error) {
		return retry.DoWithData(
			func() ([]bool, error) {
				results, err := lookup(ctx, words)
				if err != nil {
					return nil, err
				}
				if len(results) != len(words) {
					return nil, retry.Unrecoverable(fmt.Errorf(
						"lookup returned %d results for %d words", len(results), len(words)))
				}
				return results, nil
			},
			retry.Context(ctx),
			retry.Attempts(attempts),
			retry.Delay(RetryDelay),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(n uint, err error) {
				log.Debug().Uint("attempt", n+1).Err(err).Msg("retrying-lookup")
			}),
		)
	}
}
