package domain

// Frequency is a recurrence code relative to ISO week parity or a 4-week cycle.
type Frequency string

const (
	FrequencyWeekly   Frequency = "1"
	FrequencyOddWeek  Frequency = "2.1"
	FrequencyEvenWeek Frequency = "2.2"
	FrequencyCycle1   Frequency = "4.1"
	FrequencyCycle2   Frequency = "4.2"
	FrequencyCycle3   Frequency = "4.3"
	FrequencyCycle4   Frequency = "4.4"
)

var validFrequencies = map[Frequency]struct{}{
	FrequencyWeekly:   {},
	FrequencyOddWeek:  {},
	FrequencyEvenWeek: {},
	FrequencyCycle1:   {},
	FrequencyCycle2:   {},
	FrequencyCycle3:   {},
	FrequencyCycle4:   {},
}

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	_, ok := validFrequencies[f]
	return ok
}
