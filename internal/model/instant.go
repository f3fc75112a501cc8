package model

import "time"

// Instant момент времени в гражданском часовом поясе системы.
// Day и Time всегда выводятся из одного и того же At.
type Instant struct {
	At   time.Time `json:"at"`
	Day  Weekday   `json:"day_of_week"`
	Time TimeOfDay `json:"time"`
}

// InstantOf строит Instant из t, переведённого в loc
func InstantOf(t time.Time, loc *time.Location) Instant {
	civil := t.In(loc).Truncate(time.Second)
	return Instant{
		At:   civil,
		Day:  WeekdayOf(civil.Weekday()),
		Time: TimeOfDayOf(civil),
	}
}

// Date гражданская дата момента в формате 2006-01-02
func (i Instant) Date() string {
	return i.At.Format("2006-01-02")
}
