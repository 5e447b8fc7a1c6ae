package stylist

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"outfiter/models"
)

// SatisfactionScore counts the must-have names found in the outfit slots or in the extras
func SatisfactionScore(mustHave []string, result *models.OutfitResult) int {
	included := make(map[string]bool)
	for _, name := range result.Outfit.Names() {
		included[name] = true
	}
	for _, extra := range result.Extras {
		included[extra.Name] = true
	}

	score := 0
	for _, name := range mustHave {
		if included[name] {
			score++
		}
	}
	return score
}

// GenerateBestOutfit runs up to MaxAttempts composition attempts and keeps the one
// including the most must-have items. The first attempt wins ties; the loop stops
// as soon as every must-have item is accounted for.
// The context is only checked between attempts.
func (e *Engine) GenerateBestOutfit(ctx context.Context, c models.Constraints) (*models.OutfitResult, error) {
	var best *models.OutfitResult
	var lastErr error
	attempts := 0

	for attempts < e.maxAttempts {
		if err := ctx.Err(); err != nil {
			if best == nil {
				return nil, fmt.Errorf("outfit generation interrupted after %d attempts: %w", attempts, err)
			}
			break
		}
		attempts++

		result, err := e.compose(c, e.rng)
		if err != nil {
			lastErr = err
			var slotErr *SlotUnsatisfiableError
			slot := "unknown"
			if errors.As(err, &slotErr) {
				slot = slotErr.Slot
			}
			e.inc(ctx, "outfit_attempts_total", map[string]string{"result": "failed", "slot": slot})
			log.Debug().Int("attempt", attempts).Err(err).Msg("⏭️  Attempt discarded")
			continue
		}
		e.inc(ctx, "outfit_attempts_total", map[string]string{"result": "ok"})

		result.Score = SatisfactionScore(c.MustHave, result)
		if best == nil || result.Score > best.Score {
			best = result
		}
		if result.Score == len(c.MustHave) {
			break
		}
	}

	if best == nil {
		e.inc(ctx, "outfit_generations_total", map[string]string{"result": "failed"})
		log.Warn().Int("attempts", attempts).Err(lastErr).Msg("❌ No outfit could be generated")
		return nil, fmt.Errorf("%w (%d attempts): %w", ErrNoOutfit, attempts, lastErr)
	}

	best.Attempts = attempts
	e.inc(ctx, "outfit_generations_total", map[string]string{"result": "ok"})
	log.Info().
		Int("attempts", attempts).
		Int("score", best.Score).
		Int("must_have", len(c.MustHave)).
		Int("warnings", len(best.Warnings)).
		Msg("✅ Outfit generated")
	return best, nil
}
