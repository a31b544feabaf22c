package pricing

import "time"

const msPerDay = int64(24 * time.Hour / time.Millisecond)

// ComputeDuration считает длительность услуги в днях
//
// Трансферы всегда занимают один день. Для остальных услуг считаются оба дня,
// и день начала, и день окончания: с 1-го по 4-е число это 4 дня.
func ComputeDuration(start, end time.Time, serviceType ServiceType) (DurationResult, error) {
	if !serviceType.IsValid() {
		return DurationResult{}, invalid("serviceType", "unknown service type")
	}
	if start.IsZero() {
		return DurationResult{}, invalid("startDate", "is required")
	}
	if serviceType.IsTransfer() {
		return DurationResult{Days: 1}, nil
	}
	if end.IsZero() {
		return DurationResult{}, invalid("endDate", "is required")
	}
	start, end = wallClock(start), wallClock(end)
	if end.Before(start) {
		return DurationResult{}, invalid("endDate", "must not be before startDate")
	}

	return DurationResult{Days: inclusiveDays(start, end)}, nil
}

// wallClock переносит показания часов в UTC без сдвига
// Так сутки всегда длятся 24 часа, даже если между датами был переход на летнее время
func wallClock(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}

// inclusiveDays = ceil((end-start)/day) + 1, end >= start
func inclusiveDays(start, end time.Time) int {
	ms := wallClock(end).Sub(wallClock(start)).Milliseconds()
	days := ms / msPerDay
	if ms%msPerDay != 0 {
		days++
	}
	return int(days) + 1
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// OnStartDateChange применяет новую дату начала
// Если длительность уже выбрана, дата окончания сдвигается так, чтобы длительность сохранилась
func OnStartDateChange(r DateRange, start time.Time) (DateRange, error) {
	if start.IsZero() {
		return r, invalid("startDate", "is required")
	}

	prev := r
	r.StartDate = start

	if r.ServiceType.IsTransfer() {
		r.EndDate = start
		r.Days = 1
		return r, nil
	}

	if r.Days >= 1 && !r.EndDate.IsZero() {
		r.EndDate = addDays(start, r.Days-1)
		return r, nil
	}

	// Длительность ещё не выбрана - пересчитываем её по уже выбранной дате окончания
	if !r.EndDate.IsZero() {
		if wallClock(r.EndDate).Before(wallClock(start)) {
			return prev, invalid("endDate", "must not be before startDate")
		}
		r.Days = inclusiveDays(start, r.EndDate)
	} else if r.Days >= 1 {
		r.EndDate = addDays(start, r.Days-1)
	}

	return r, nil
}

// OnEndDateChange применяет новую дату окончания и пересчитывает длительность
func OnEndDateChange(r DateRange, end time.Time) (DateRange, error) {
	if end.IsZero() {
		return r, invalid("endDate", "is required")
	}
	if r.StartDate.IsZero() {
		return r, invalid("startDate", "is required")
	}

	if r.ServiceType.IsTransfer() {
		r.EndDate = r.StartDate
		r.Days = 1
		return r, nil
	}

	if wallClock(end).Before(wallClock(r.StartDate)) {
		return r, invalid("endDate", "must not be before startDate")
	}

	r.EndDate = end
	r.Days = inclusiveDays(r.StartDate, end)
	return r, nil
}

// OnDurationChange применяет новую длительность и пересчитывает дату окончания
func OnDurationChange(r DateRange, days int) (DateRange, error) {
	if days < 1 {
		return r, invalid("days", "must be at least 1")
	}
	if r.ServiceType.IsTransfer() && days != 1 {
		return r, invalid("days", "transfers always last one day")
	}

	r.Days = days
	if !r.StartDate.IsZero() {
		r.EndDate = addDays(r.StartDate, days-1)
	}
	return r, nil
}
