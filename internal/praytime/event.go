package praytime

import (
	"fmt"
	"strings"
)

// Event indexes a Times or Formatted value.
type Event int

// Events in chronological order.
const (
	Fajr Event = iota
	Sunrise
	Dhuhr
	Asr
	Sunset
	Maghrib
	Isha
)

// NumEvents is the number of events computed per day.
const NumEvents = 7

var eventNames = [NumEvents]string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Sunset", "Maghrib", "Isha",
}

func (e Event) String() string {
	if e < 0 || e >= NumEvents {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// EventNames returns the seven event labels in order.
func EventNames() []string {
	names := make([]string, NumEvents)
	copy(names, eventNames[:])
	return names
}

// ParseEvent looks up an event by its label, ignoring case.
func ParseEvent(name string) (Event, error) {
	for i, n := range eventNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("unknown prayer name: %s", name)
}

// Times holds fractional hours, indexed by Event.
type Times [NumEvents]float64

// Formatted holds display strings, indexed by Event.
type Formatted [NumEvents]string
