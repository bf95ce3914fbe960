package recommend

// UsageGeneral is the flat profile used when no usage tag is given or the
// tag is unrecognized.
const UsageGeneral = "general"

// usageWeights maps a usage tag to its fixed weight table. Adding a profile
// is a data change here, nothing else. Values are documented behavior:
// tests assert orderings against these exact numbers.
//
//	student      price dominates (0.50); endurance and portability next.
//	gaming       GPU and refresh rate carry most of the score.
//	programming  RAM and core count carry most of the score.
//	office       portability, battery and low weight.
//	design       display quality first, then GPU and RAM.
//	video_editing  cores and GPU, with RAM and storage headroom.
//	workstation  raw compute: cores, RAM, GPU, storage.
//	general      a flat spread across the broad quality signals.
var usageWeights = map[string]WeightVector{
	"student": {
		FeatPrice:       0.50,
		FeatBattery:     0.15,
		FeatPortability: 0.15,
		FeatRAM:         0.10,
		FeatStorage:     0.10,
	},
	"gaming": {
		FeatGPUScore:       0.30,
		FeatRefreshRate:    0.20,
		FeatCores:          0.15,
		FeatRAM:            0.15,
		FeatDisplayQuality: 0.10,
		FeatStorage:        0.05,
		FeatBattery:        0.05,
	},
	"programming": {
		FeatRAM:            0.30,
		FeatCores:          0.25,
		FeatStorage:        0.15,
		FeatBattery:        0.10,
		FeatPortability:    0.10,
		FeatDisplayQuality: 0.10,
	},
	"office": {
		FeatPortability: 0.25,
		FeatBattery:     0.25,
		FeatWeight:      0.20,
		FeatPrice:       0.15,
		FeatDisplaySize: 0.15,
	},
	"design": {
		FeatDisplayQuality: 0.30,
		FeatGPUScore:       0.20,
		FeatRAM:            0.20,
		FeatCores:          0.15,
		FeatStorage:        0.15,
	},
	"video_editing": {
		FeatCores:          0.25,
		FeatGPUScore:       0.25,
		FeatRAM:            0.20,
		FeatStorage:        0.20,
		FeatDisplayQuality: 0.10,
	},
	"workstation": {
		FeatCores:        0.30,
		FeatRAM:          0.25,
		FeatGPUScore:     0.20,
		FeatStorage:      0.15,
		FeatConnectivity: 0.10,
	},
	UsageGeneral: {
		FeatPrice:          0.125,
		FeatRAM:            0.125,
		FeatStorage:        0.125,
		FeatCores:          0.125,
		FeatGPUScore:       0.125,
		FeatDisplayQuality: 0.125,
		FeatPortability:    0.125,
		FeatBattery:        0.125,
	},
}

// WeightsForUsage returns a copy of the weight table for a usage tag,
// falling back to the general table for unknown tags.
func WeightsForUsage(usage string) WeightVector {
	table, ok := usageWeights[usage]
	if !ok {
		table = usageWeights[UsageGeneral]
	}

	out := make(WeightVector, len(table))
	for feat, w := range table {
		out[feat] = w
	}
	return out
}

// KnownUsage reports whether the tag has a dedicated weight table.
func KnownUsage(usage string) bool {
	_, ok := usageWeights[usage]
	return ok
}
