package session

import "sort"

// Rank упорядочивает кандидатов: сначала ACTIVE по убыванию начала
// (самое недавно начавшееся занятие первым), затем PREP по возрастанию
// начала (ближайшее занятие первым). Сортировка стабильная.
func Rank(candidates []Candidate) []Candidate {
	active := make([]Candidate, 0, len(candidates))
	prep := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		switch c.State {
		case StateActive:
			active = append(active, c)
		case StatePrep:
			prep = append(prep, c)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Entry.Start > active[j].Entry.Start
	})
	sort.SliceStable(prep, func(i, j int) bool {
		return prep[i].Entry.Start < prep[j].Entry.Start
	})

	return append(active, prep...)
}

// SelectPrimary возвращает главного кандидата или nil
func SelectPrimary(candidates []Candidate) *Candidate {
	ranked := Rank(candidates)
	if len(ranked) == 0 {
		return nil
	}
	primary := ranked[0]
	return &primary
}
