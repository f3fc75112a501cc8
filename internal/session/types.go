// Package session решает, какие занятия преподавателя идут сейчас или вот-вот
// начнутся, какое из них главное, и можно ли управлять данной аудиторией.
//
// Пакет не хранит состояния между вызовами: каждый запрос читает индекс
// расписания один раз и часы один раз, дальше только вычисления.
package session

import (
	"github.com/Ardenhero/classtrack/internal/model"
)

// State состояние записи расписания относительно момента
type State string

const (
	StateNone   State = "none"
	StatePrep   State = "prep"
	StateActive State = "active"
)

// Candidate запись, которая сейчас ACTIVE или PREP
type Candidate struct {
	Entry model.ScheduleEntry `json:"entry"`
	State State               `json:"state"`
	// PrepWindowStart момент начала окна подготовки, только для PREP
	PrepWindowStart *model.TimeOfDay `json:"prep_window_start,omitempty"`
}

// Reason причина решения Gate
type Reason string

const (
	ReasonNoEntries        Reason = "no_entries"
	ReasonNoCandidates     Reason = "no_candidates"
	ReasonResourceMismatch Reason = "resource_mismatch"
	ReasonOK               Reason = "ok"
)

// Decision результат Authorize
type Decision struct {
	Authorized bool        `json:"authorized"`
	Reason     Reason      `json:"reason"`
	Primary    *Candidate  `json:"primary"`
	Candidates []Candidate `json:"candidates"`
}

// Classification результат ClassifyNow
type Classification struct {
	Instant    model.Instant `json:"instant"`
	Primary    *Candidate    `json:"primary"`
	Candidates []Candidate   `json:"candidates"`
}
