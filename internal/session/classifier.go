package session

import (
	"github.com/Ardenhero/classtrack/internal/model"
)

// Classify помечает каждую запись дня момента как ACTIVE или PREP.
//
// ACTIVE: start <= t <= end. PREP: t <= start <= t+prepLead.
// На границе start == t запись ACTIVE. Окно подготовки не переходит через
// полночь: занятия следующих суток не попадают в него.
func Classify(entries []model.ScheduleEntry, now model.Instant, prepLeadMinutes int) []Candidate {
	candidates := make([]Candidate, 0, len(entries))
	seen := make(map[int64]bool, len(entries))
	horizon := now.Time.Add(prepLeadMinutes)

	for _, e := range entries {
		if !e.Day.Matches(now.Day) {
			continue
		}
		if e.ID != 0 && seen[e.ID] {
			continue
		}

		switch classifyEntry(e, now.Time, horizon) {
		case StateActive:
			candidates = append(candidates, Candidate{Entry: e, State: StateActive})
		case StatePrep:
			prepStart := now.Time
			candidates = append(candidates, Candidate{Entry: e, State: StatePrep, PrepWindowStart: &prepStart})
		default:
			continue
		}
		seen[e.ID] = true
	}

	return candidates
}

// StateOf состояние одной записи в момент now
func StateOf(e model.ScheduleEntry, now model.Instant, prepLeadMinutes int) State {
	if !e.Day.Matches(now.Day) {
		return StateNone
	}
	return classifyEntry(e, now.Time, now.Time.Add(prepLeadMinutes))
}

func classifyEntry(e model.ScheduleEntry, t, horizon model.TimeOfDay) State {
	if e.Start <= t && t <= e.End {
		return StateActive
	}
	if t <= e.Start && e.Start <= horizon {
		return StatePrep
	}
	return StateNone
}
