package stylist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoOutfit is returned when every attempt of the retry loop failed
var ErrNoOutfit = errors.New("unable to generate an outfit, check the Top/Bottom/Shoes/Layer categories of the catalog")

// SlotUnsatisfiableError reports a required slot that could not be filled in one attempt
type SlotUnsatisfiableError struct {
	Slot   string
	Reason string
}

func (e *SlotUnsatisfiableError) Error() string {
	return fmt.Sprintf("%s slot unsatisfiable: %s", strings.ToLower(e.Slot), e.Reason)
}

func slotError(slot, reason string) error {
	return &SlotUnsatisfiableError{Slot: slot, Reason: reason}
}
