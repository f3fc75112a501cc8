package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/clock"
)

// DefaultPrepLeadMinutes окно подготовки перед началом занятия
const DefaultPrepLeadMinutes = 15

// Gate отвечает на вопрос "что у преподавателя сейчас" и "можно ли ему
// управлять аудиторией". Ничего не изменяет.
type Gate struct {
	index    Index
	clock    clock.Clock
	prepLead int
}

// NewGate создаёт Gate. prepLeadMinutes < 0 считается нулём.
func NewGate(index Index, c clock.Clock, prepLeadMinutes int) *Gate {
	if prepLeadMinutes < 0 {
		prepLeadMinutes = 0
	}
	return &Gate{
		index:    index,
		clock:    c,
		prepLead: prepLeadMinutes,
	}
}

// PrepLead окно подготовки в минутах
func (g *Gate) PrepLead() int {
	return g.prepLead
}

// ClassifyNow возвращает текущие и ближайшие занятия без проверки аудитории
func (g *Gate) ClassifyNow(ctx context.Context, subjectID uuid.UUID) (Classification, error) {
	now := g.clock.Now()

	entries, err := g.index.EntriesFor(ctx, subjectID, now.Day)
	if err != nil {
		return Classification{}, fmt.Errorf("entries for subject: %w", err)
	}

	ranked := Rank(Classify(entries, now, g.prepLead))

	return Classification{
		Instant:    now,
		Primary:    first(ranked),
		Candidates: ranked,
	}, nil
}

// Authorize решает, авторизован ли преподаватель. target == nil означает
// вопрос "что активно сейчас" без привязки к аудитории.
//
// Совпадение аудитории проверяется по всем кандидатам, а не только по
// главному: параллельное занятие тоже даёт доступ.
func (g *Gate) Authorize(ctx context.Context, subjectID uuid.UUID, target *uuid.UUID) (Decision, error) {
	now := g.clock.Now()

	entries, err := g.index.EntriesFor(ctx, subjectID, now.Day)
	if err != nil {
		return Decision{}, fmt.Errorf("entries for subject: %w", err)
	}

	if len(entries) == 0 {
		has, err := g.index.HasEntries(ctx, subjectID)
		if err != nil {
			return Decision{}, fmt.Errorf("has entries: %w", err)
		}
		if !has {
			return deny(ReasonNoEntries, nil), nil
		}
	}

	ranked := Rank(Classify(entries, now, g.prepLead))
	if len(ranked) == 0 {
		return deny(ReasonNoCandidates, nil), nil
	}

	if target == nil {
		return Decision{Authorized: true, Reason: ReasonOK, Primary: first(ranked), Candidates: ranked}, nil
	}

	for _, c := range ranked {
		if c.Entry.HasResource(*target) {
			return Decision{Authorized: true, Reason: ReasonOK, Primary: first(ranked), Candidates: ranked}, nil
		}
	}

	d := deny(ReasonResourceMismatch, ranked)
	d.Primary = first(ranked)
	return d, nil
}

func deny(reason Reason, candidates []Candidate) Decision {
	if candidates == nil {
		candidates = []Candidate{}
	}
	return Decision{Authorized: false, Reason: reason, Candidates: candidates}
}

func first(ranked []Candidate) *Candidate {
	if len(ranked) == 0 {
		return nil
	}
	c := ranked[0]
	return &c
}
