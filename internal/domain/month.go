package domain

import (
	"regexp"
	"strconv"
	"time"
)

// 4 dígitos, hífen, mês 01..12. Nada antes, nada depois.
var monthPattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// MonthRange é o intervalo semiaberto [Start, End) de um mês do calendário.
type MonthRange struct {
	Month string
	Start time.Time
	End   time.Time
}

// Contains indica se o instante está dentro do intervalo (End é exclusivo).
func (r MonthRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ParseMonth resolve "YYYY-MM" no intervalo do mês em UTC.
func ParseMonth(month string) (MonthRange, error) {
	return ParseMonthIn(month, time.UTC)
}

// ParseMonthIn resolve "YYYY-MM" no fuso informado.
// O fim é calculado somando um mês ao início (aritmética de calendário),
// então fevereiro de ano bissexto e meses de 30/31 dias saem corretos.
func ParseMonthIn(month string, loc *time.Location) (MonthRange, error) {
	matches := monthPattern.FindStringSubmatch(month)
	if matches == nil {
		return MonthRange{}, ErrInvalidMonth
	}
	if loc == nil {
		loc = time.UTC
	}

	year, _ := strconv.Atoi(matches[1])
	monthNumber, _ := strconv.Atoi(matches[2])

	start := time.Date(year, time.Month(monthNumber), 1, 0, 0, 0, 0, loc)
	return MonthRange{
		Month: month,
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}
