package models

// MeanTable maps mode -> season -> mean weekly days.
type MeanTable map[Mode]map[Season]float64

// Get returns the mean for (mode, season), or 0 when either key is missing.
func (t MeanTable) Get(mode Mode, season Season) float64 {
	if bySeason, ok := t[mode]; ok {
		return bySeason[season]
	}
	return 0
}

// Set stores the mean for (mode, season).
func (t MeanTable) Set(mode Mode, season Season, v float64) {
	bySeason, ok := t[mode]
	if !ok {
		bySeason = make(map[Season]float64)
		t[mode] = bySeason
	}
	bySeason[season] = v
}

// LongRecord is one flattened (mode, gender, season, mean) tuple.
type LongRecord struct {
	Mode     Mode    `json:"mode"`
	Gender   Gender  `json:"gender"`
	Season   Season  `json:"season"`
	MeanDays float64 `json:"mean_days"`
}

// StackKey identifies one segment of the stacked chart.
type StackKey struct {
	Mode   Mode
	Gender Gender
}

// String returns the legend label, e.g. "Walking-Male".
func (k StackKey) String() string {
	return string(k.Mode) + "-" + string(k.Gender)
}

// StackKeys returns every mode/gender key in canonical stacking order.
func StackKeys() []StackKey {
	keys := make([]StackKey, 0, len(Modes())*len(Genders()))
	for _, m := range Modes() {
		for _, g := range Genders() {
			keys = append(keys, StackKey{Mode: m, Gender: g})
		}
	}
	return keys
}
