package stylist

import (
	"github.com/rs/zerolog/log"

	"outfiter/models"
)

// slotRule is a hard rule checked against the candidate of a slot.
// When validate fails the warning is recorded and remedy proposes a replacement;
// a nil replacement either fails the attempt (failure set) or keeps the candidate
// (keepWarning replaces warning then).
type slotRule struct {
	name        string
	applies     bool
	validate    func(*models.Item) bool
	remedy      func() *models.Item
	warning     string
	keepWarning string
	failure     string
}

// applyRules runs the rules in order; later rules see the output of earlier ones
func applyRules(slot string, candidate *models.Item, rules []slotRule) (*models.Item, []string, error) {
	var warnings []string
	for _, rule := range rules {
		if !rule.applies || rule.validate(candidate) {
			continue
		}
		replacement := rule.remedy()
		log.Debug().
			Str("slot", slot).
			Str("rule", rule.name).
			Str("candidate", candidate.Name).
			Bool("replaced", replacement != nil).
			Msg("🔁 Slot rule triggered")
		if replacement == nil {
			if rule.failure != "" {
				return nil, append(warnings, rule.warning), slotError(slot, rule.failure)
			}
			warnings = append(warnings, rule.keepWarning)
			continue
		}
		warnings = append(warnings, rule.warning)
		candidate = replacement
	}
	return candidate, warnings, nil
}

// bottomRules builds the hard rules for the bottom slot: baggy first, then shorts.
// baggyPool is the bottom pool already restricted to baggy items;
// styledBottoms is the style/season/temperature filtered pool before color preference.
func bottomRules(rng Rand, temperature int, needBaggy bool, baggyPool, styledBottoms []*models.Item) []slotRule {
	shortsKept := "Temperature below 25°C, shorts are disabled, but no trousers are available: keeping the short."
	if needBaggy {
		shortsKept = "Temperature below 25°C, shorts are disabled, but ERL VAMP shoes require a baggy bottom and no baggy trousers are available: keeping the short."
	}
	return []slotRule{
		{
			name:     "baggy",
			applies:  needBaggy,
			validate: isBaggy,
			remedy:   func() *models.Item { return PickOne(rng, baggyPool) },
			warning:  "ERL VAMP shoes detected, a baggy bottom is required: the bottom was replaced by a baggy one.",
			failure:  "ERL VAMP shoes require a baggy bottom, but none is available.",
		},
		{
			name:     "shorts",
			applies:  temperature < ShortsMinTemperature,
			validate: isNotShort,
			remedy: func() *models.Item {
				candidates := filterItems(styledBottoms, isNotShort)
				if needBaggy {
					candidates = filterItems(candidates, isBaggy)
				}
				return PickOne(rng, candidates)
			},
			warning:     "Temperature below 25°C, shorts are disabled: the short was replaced by trousers.",
			keepWarning: shortsKept,
		},
	}
}
