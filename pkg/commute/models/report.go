package models

// PercentCheck is the result of checking one percent column total.
type PercentCheck struct {
	Table  string  `json:"table"`
	Column string  `json:"column"`
	Total  float64 `json:"total"`
	OK     bool    `json:"ok"`
}

// StageResult records what a stage produced.
type StageResult struct {
	Stage string `json:"stage"`
	// Path is the written PNG file.
	Path string `json:"path"`
	// Spec is the chart that was rendered.
	Spec ChartSpec `json:"-"`
}

// Report collects everything a pipeline run computed.
type Report struct {
	// Means maps mode -> season -> mean days (stage 3).
	Means MeanTable `json:"means,omitempty"`
	// Records are the long-format records (stage 4).
	Records []LongRecord `json:"records,omitempty"`
	// GenderTotals maps gender -> season -> summed mean days (stage 4).
	GenderTotals map[Gender]map[Season]float64 `json:"gender_totals,omitempty"`
	// PercentChecks are the frequency table sanity checks (stage 1).
	PercentChecks []PercentCheck `json:"percent_checks,omitempty"`
	// Stages lists the stages that ran, in order.
	Stages []StageResult `json:"stages"`
}
