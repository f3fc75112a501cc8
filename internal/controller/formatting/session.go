package formatting

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/model"
	"github.com/Ardenhero/classtrack/internal/session"
)

// GetWeekdayName возвращает название дня недели на русском
func GetWeekdayName(day model.Weekday) string {
	names := []string{
		"Каждый день",
		"Понедельник",
		"Вторник",
		"Среда",
		"Четверг",
		"Пятница",
		"Суббота",
		"Воскресенье",
	}
	if day.IsValid() {
		return names[day]
	}
	return "Неизвестно"
}

// FormatTimeRange форматирует диапазон времени занятия
func FormatTimeRange(start, end model.TimeOfDay) string {
	return fmt.Sprintf("%s-%s", start.HHMM(), end.HHMM())
}

// FormatRoom название аудитории или заглушка
func FormatRoom(id *uuid.UUID, names map[uuid.UUID]string) string {
	if id == nil {
		return "без аудитории"
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return "аудитория " + id.String()[:8]
}

// FormatCandidate одна строка о занятии
func FormatCandidate(c session.Candidate, names map[uuid.UUID]string) string {
	icon := "🟢"
	if c.State == session.StatePrep {
		icon = "🟡"
	}
	return fmt.Sprintf("%s %s, %s", icon, FormatTimeRange(c.Entry.Start, c.Entry.End), FormatRoom(c.Entry.ResourceID, names))
}

// FormatClassification текст ответа на /session
func FormatClassification(cl session.Classification, names map[uuid.UUID]string) string {
	if len(cl.Candidates) == 0 {
		return fmt.Sprintf("📭 Сейчас занятий нет (%s, %s).", GetWeekdayName(cl.Instant.Day), cl.Instant.Time.HHMM())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🗓 %s, %s\n\n", GetWeekdayName(cl.Instant.Day), cl.Instant.Time.HHMM())

	if cl.Primary != nil {
		sb.WriteString("Основное занятие:\n")
		sb.WriteString(FormatCandidate(*cl.Primary, names))
		sb.WriteString("\n")
	}

	if len(cl.Candidates) > 1 {
		sb.WriteString("\nТакже:\n")
		for _, c := range cl.Candidates[1:] {
			sb.WriteString(FormatCandidate(c, names))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n🟢 идёт  🟡 скоро начнётся")
	return sb.String()
}

// FormatDecision текст ответа на /room
func FormatDecision(roomName string, d session.Decision) string {
	switch d.Reason {
	case session.ReasonOK:
		return fmt.Sprintf("✅ Доступ к аудитории %s разрешён.", roomName)
	case session.ReasonNoEntries:
		return "❌ У вас нет занятий в расписании."
	case session.ReasonNoCandidates:
		return "❌ Сейчас у вас нет активного занятия."
	case session.ReasonResourceMismatch:
		return fmt.Sprintf("❌ Текущее занятие проходит не в аудитории %s.", roomName)
	default:
		return "❌ Доступ запрещён."
	}
}

// FormatPrepReminder напоминание о скором начале занятия
func FormatPrepReminder(c session.Candidate, names map[uuid.UUID]string) string {
	return fmt.Sprintf("⏰ Скоро занятие: %s, %s.\nУправление аудиторией уже доступно.",
		FormatTimeRange(c.Entry.Start, c.Entry.End), FormatRoom(c.Entry.ResourceID, names))
}
