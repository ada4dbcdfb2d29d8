package forecast

import "github.com/aevon-lab/pos-analytics/internal/signals"

// flowBaseline is the starting level of each segment (0 low .. 3 peak),
// in Segments order.
var flowBaseline = map[signals.Flow][3]int{
	signals.FlowArrival:   {1, 2, 2},
	signals.FlowDeparture: {2, 1, 0},
	signals.FlowHigh:      {2, 3, 3},
	signals.FlowMedium:    {1, 2, 1},
	signals.FlowStandard:  {0, 1, 1},
}

// weatherShift moves segments up or down per sky condition.
var weatherShift = map[signals.Weather][3]int{
	signals.Sunny:  {0, 1, 0},
	signals.Cloudy: {0, 0, 0},
	signals.Rainy:  {0, -1, -1},
}

func segmentOutlook(flow signals.Flow, weather signals.Weather, inflection bool, growth int64) []SegmentOutlook {
	base := flowBaseline[flow]
	shift := weatherShift[weather]

	bump := 0
	if inflection {
		bump++
	}
	switch {
	case growth >= growthStep:
		bump++
	case growth <= -growthStep:
		bump--
	}

	out := make([]SegmentOutlook, len(Segments))
	for i, seg := range Segments {
		out[i] = SegmentOutlook{Segment: seg, Status: levelStatus(base[i] + shift[i] + bump)}
	}
	return out
}

func levelStatus(level int) Status {
	if level < 0 {
		level = 0
	}
	if level >= len(statusLevels) {
		level = len(statusLevels) - 1
	}
	return statusLevels[level]
}
