package scatterplot

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gonum.org/v1/plot"
)

const secondsPerDay = 24 * 60 * 60

// Days converts t to fractional days since the Unix epoch, the x unit of
// dated plots.
func Days(t time.Time) float64 {
	return float64(t.Unix())/secondsPerDay + float64(t.Nanosecond())/(secondsPerDay*1e9)
}

// DayTime is the inverse of Days, in UTC.
func DayTime(days float64) time.Time {
	secs := math.Floor(days * secondsPerDay)
	nsec := (days*secondsPerDay - secs) * 1e9
	return time.Unix(int64(secs), int64(nsec)).UTC()
}

// yearDay returns the day number of January 1st of year.
func yearDay(year int) float64 {
	return Days(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// yearTicks places a major tick on January 1st of every year (or every few
// years on long ranges) between min and max, in day units.
type yearTicks struct{}

// Ticks implements plot.Ticker.
func (yearTicks) Ticks(min, max float64) []plot.Tick {
	first, last := DayTime(min).Year(), DayTime(max).Year()
	step := 1
	if span := last - first + 1; span > 10 {
		step = int(math.Ceil(float64(span) / 10))
	}
	var ticks []plot.Tick
	for y := first; y <= last+1; y++ {
		v := yearDay(y)
		if v < min || v > max {
			continue
		}
		label := ""
		if len(ticks)%step == 0 {
			label = strconv.Itoa(y)
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	if len(ticks) == 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	return ticks
}

// timeTicker labels dated x axes with years.
func timeTicker() plot.Ticker {
	return plot.TimeTicks{Ticker: yearTicks{}, Format: "2006", Time: DayTime}
}

// constantTicks places ticks at values; for dated axes the values are years.
func constantTicks(values []float64, dated bool) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		if dated {
			ticks[i] = plot.Tick{Value: yearDay(int(v)), Label: strconv.Itoa(int(v))}
			continue
		}
		ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)}
	}
	return ticks
}
