package reporting

import "sort"

// Weekdays is the fixed column order for weekday-aligned charts.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Months is the fixed column order for month-aligned charts.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// StatusOrder is the fixed dataset order for the monthly status chart.
var StatusOrder = []string{"Scheduled", "Completed", "Canceled"}

// Dataset is one labeled series of a chart, aligned to the chart's Labels.
type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// Chart is the dense payload the front-end charting library consumes:
// every dataset has one entry per label, missing categories zero-filled.
type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// WeekdaySpecialtyCount is a grouped row of the clinic-schedule join:
// how many schedule entries a specialty has on a weekday.
type WeekdaySpecialtyCount struct {
	Weekday   string
	Specialty string
	Count     int
}

// MonthStatusCount is a grouped appointment row: month is 1..12.
type MonthStatusCount struct {
	Month  int
	Status string
	Count  int
}

// MonthDiseaseCount is a grouped diagnosis row: month is 1..12.
type MonthDiseaseCount struct {
	Month   int
	Disease string
	Count   int
}

var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(Weekdays))
	for i, d := range Weekdays {
		m[d] = i
	}
	return m
}()

// SpecialtyHistogram builds the weekly specialty histogram: one dataset per
// specialty in lexicographic order, each a 7-slot array aligned Monday..Sunday.
func SpecialtyHistogram(rows []WeekdaySpecialtyCount) Chart {
	bySpecialty := make(map[string][]int)
	for _, row := range rows {
		idx, ok := weekdayIndex[row.Weekday]
		if !ok {
			continue
		}
		data, ok := bySpecialty[row.Specialty]
		if !ok {
			data = make([]int, len(Weekdays))
			bySpecialty[row.Specialty] = data
		}
		data[idx] += row.Count
	}

	specialties := make([]string, 0, len(bySpecialty))
	for s := range bySpecialty {
		specialties = append(specialties, s)
	}
	sort.Strings(specialties)

	chart := Chart{Labels: Weekdays, Datasets: make([]Dataset, 0, len(specialties))}
	for _, s := range specialties {
		chart.Datasets = append(chart.Datasets, Dataset{Label: s, Data: bySpecialty[s]})
	}
	return chart
}

// MonthlyStatusChart builds the monthly appointment-status chart. Datasets
// appear in the fixed order Scheduled, Completed, Canceled even when a status
// has no appointments at all.
func MonthlyStatusChart(rows []MonthStatusCount) Chart {
	byStatus := make(map[string][]int, len(StatusOrder))
	for _, s := range StatusOrder {
		byStatus[s] = make([]int, len(Months))
	}
	for _, row := range rows {
		data, ok := byStatus[row.Status]
		if !ok || row.Month < 1 || row.Month > 12 {
			continue
		}
		data[row.Month-1] += row.Count
	}

	chart := Chart{Labels: Months, Datasets: make([]Dataset, 0, len(StatusOrder))}
	for _, s := range StatusOrder {
		chart.Datasets = append(chart.Datasets, Dataset{Label: s, Data: byStatus[s]})
	}
	return chart
}

// MonthlyDiseaseChart builds the monthly diagnosis chart: one dataset per
// distinct disease in first-encounter order. Every dataset starts as 12 zeros
// so a disease first seen in December still reports a full year.
func MonthlyDiseaseChart(rows []MonthDiseaseCount) Chart {
	byDisease := make(map[string][]int)
	var order []string
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		data, ok := byDisease[row.Disease]
		if !ok {
			data = make([]int, len(Months))
			byDisease[row.Disease] = data
			order = append(order, row.Disease)
		}
		data[row.Month-1] += row.Count
	}

	chart := Chart{Labels: Months, Datasets: make([]Dataset, 0, len(order))}
	for _, d := range order {
		chart.Datasets = append(chart.Datasets, Dataset{Label: d, Data: byDisease[d]})
	}
	return chart
}
