package dashboard

import (
	"fmt"
	"time"
)

// Bucket es un intervalo fijo (día o mes) sobre el que se agrupan las
// ventas para la tendencia. Start y End son inclusivos.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains indica si un instante cae dentro del bucket.
func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// rangeDays mapea un rango de fechas a su longitud en días. Un rango no
// reconocido cae en 7; "year" cuenta como 365 para el cálculo de
// crecimiento período-sobre-período.
func rangeDays(dateRange string) int {
	switch dateRange {
	case Range7d:
		return 7
	case Range30d:
		return 30
	case Range90d:
		return 90
	case Range365d, RangeYear:
		return 365
	default:
		return 7
	}
}

// BuildBuckets particiona el rango seleccionado en buckets ordenados y
// siempre completos (rellenos con cero aguas abajo): la serie de tendencia
// tiene longitud fija y sin huecos para la ventana elegida.
//
//   - DateRange "year": 12 buckets mensuales del año seleccionado,
//     etiquetados "Enero 2024", ... SelectedYear ≤ 0 usa el año de now.
//   - Resto: N buckets diarios terminando hoy, del inicio al fin del día
//     local, etiquetados dd/MM, del más antiguo al más reciente.
func BuildBuckets(dateRange string, selectedYear int, now time.Time) []Bucket {
	if dateRange == RangeYear {
		year := selectedYear
		if year <= 0 {
			year = now.Year()
		}
		buckets := make([]Bucket, 0, 12)
		for m := time.January; m <= time.December; m++ {
			start := time.Date(year, m, 1, 0, 0, 0, 0, now.Location())
			end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
			buckets = append(buckets, Bucket{
				Label: fmt.Sprintf("%s %d", spanishMonths[m-1], year),
				Start: start,
				End:   end,
			})
		}
		return buckets
	}

	days := rangeDays(dateRange)
	today := dayOf(now)
	buckets := make([]Bucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		buckets = append(buckets, Bucket{
			Label: start.Format("02/01"),
			Start: start,
			End:   start.Add(24*time.Hour - time.Nanosecond),
		})
	}
	return buckets
}
