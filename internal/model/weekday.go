package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday день недели записи расписания. WeekdayUnset означает "каждый день".
type Weekday int

const (
	WeekdayUnset Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayOf переводит time.Weekday (воскресенье = 0) в Weekday (понедельник = 1)
func WeekdayOf(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(d)
}

// IsValid проверяет что значение входит в перечисление
func (d Weekday) IsValid() bool {
	return d >= WeekdayUnset && d <= Sunday
}

// IsUnset возвращает true для записей без конкретного дня
func (d Weekday) IsUnset() bool {
	return d == WeekdayUnset
}

// Matches проверяет подходит ли запись с этим днём для дня other
func (d Weekday) Matches(other Weekday) bool {
	return d == WeekdayUnset || d == other
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	if d == WeekdayUnset {
		return "Unset"
	}
	return weekdayNames[d]
}

// ParseWeekday разбирает день недели: полное или короткое английское название
// без учёта регистра, число 1-7 (понедельник = 1) или пустую строку (Unset).
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return WeekdayUnset, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 7 {
			return WeekdayUnset, fmt.Errorf("weekday %d out of range 1-7", n)
		}
		return Weekday(n), nil
	}

	for i := Monday; i <= Sunday; i++ {
		name := strings.ToLower(weekdayNames[i])
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return i, nil
		}
	}

	return WeekdayUnset, fmt.Errorf("unknown weekday %q", s)
}

// ParseWeekdays разбирает список дней в тех форматах, в которых он хранился
// раньше: "Mon,Wed", "[Monday, Friday]", "{1,3}". Порядок сохраняется,
// дубликаты убираются. Пустой список даёт []Weekday{WeekdayUnset}.
func ParseWeekdays(s string) ([]Weekday, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "[]{}()")

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == ' '
	})

	if len(parts) == 0 {
		return []Weekday{WeekdayUnset}, nil
	}

	seen := make(map[Weekday]bool, len(parts))
	days := make([]Weekday, 0, len(parts))
	for _, p := range parts {
		d, err := ParseWeekday(strings.Trim(p, `"'`))
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}

	// "каждый день" поглощает конкретные дни
	if seen[WeekdayUnset] {
		return []Weekday{WeekdayUnset}, nil
	}

	return days, nil
}
