package formsession

import "time"

const slotLayout = "15:04"

// Slots enumerates the legal appointment times for the configured business
// window at the configured granularity, inclusive of both endpoints.
// These are the only values accepted for the appointmentTime field; it is
// never free text.
func (c Config) Slots() []string {
	start, err := time.Parse(slotLayout, c.SlotStart)
	if err != nil {
		return nil
	}
	end, err := time.Parse(slotLayout, c.SlotEnd)
	if err != nil || end.Before(start) {
		return nil
	}
	step := c.SlotInterval
	if step <= 0 {
		step = 30 * time.Minute
	}

	var slots []string
	for t := start; !t.After(end); t = t.Add(step) {
		slots = append(slots, t.Format(slotLayout))
	}
	return slots
}

// IsLegalSlot reports whether value is one of the enumerable slots.
func (c Config) IsLegalSlot(value string) bool {
	for _, s := range c.Slots() {
		if s == value {
			return true
		}
	}
	return false
}
