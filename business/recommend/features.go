package recommend

import (
	"strconv"
	"strings"

	"gulhajiPlaza/domain"
)

// FeatureVector maps feature name to its raw numeric value for one laptop.
type FeatureVector map[string]float64

// WeightVector maps feature name to a non-negative scoring weight.
type WeightVector map[string]float64

// Feature names. Categorical hardware attributes (GPU class, panel type,
// resolution) are folded into derived ordinal scores so every feature is
// numeric and normalizable.
const (
	FeatPrice          = "price"
	FeatCores          = "processor_cores"
	FeatThreads        = "processor_threads"
	FeatBaseClock      = "base_clock_ghz"
	FeatBoostClock     = "boost_clock_ghz"
	FeatRAM            = "ram_gb"
	FeatStorage        = "storage_gb"
	FeatDisplaySize    = "display_size_inches"
	FeatRefreshRate    = "refresh_rate_hz"
	FeatGPUScore       = "gpu_score"
	FeatDisplayQuality = "display_quality_score"
	FeatPortability    = "portability_score"
	FeatBattery        = "battery_score"
	FeatConnectivity   = "connectivity_score"
	FeatWeight         = "weight_kg"
)

// snapshotFeatures are the features materialized into every snapshot item,
// in the fixed order used for deterministic iteration. FeatPrice is absent:
// price is live data and never enters a snapshot.
var snapshotFeatures = []string{
	FeatCores,
	FeatThreads,
	FeatBaseClock,
	FeatBoostClock,
	FeatRAM,
	FeatStorage,
	FeatDisplaySize,
	FeatRefreshRate,
	FeatGPUScore,
	FeatDisplayQuality,
	FeatPortability,
	FeatBattery,
	FeatConnectivity,
	FeatWeight,
}

// lessIsBetter marks features where a smaller raw value is the desirable
// direction. Their satisfaction uses the inverted normalized value.
var lessIsBetter = map[string]bool{
	FeatWeight: true,
	FeatPrice:  true,
}

// buildFeatureVector derives the numeric feature vector for one laptop.
func buildFeatureVector(l domain.Laptop) FeatureVector {
	return FeatureVector{
		FeatCores:          float64(l.ProcessorCores),
		FeatThreads:        float64(l.ProcessorThreads),
		FeatBaseClock:      l.BaseClockGHz,
		FeatBoostClock:     l.BoostClockGHz,
		FeatRAM:            float64(l.RAMGB),
		FeatStorage:        float64(l.StorageGB),
		FeatDisplaySize:    l.DisplaySizeInches,
		FeatRefreshRate:    float64(l.RefreshRateHz),
		FeatGPUScore:       gpuScore(l.GPUType, float64(l.VRAMGB)),
		FeatDisplayQuality: displayQualityScore(l.DisplayResolution, l.PanelType, float64(l.RefreshRateHz)),
		FeatPortability:    portabilityScore(l.WeightKg, l.ThicknessMM),
		FeatBattery:        batteryScore(l.BatteryWhr),
		FeatConnectivity:   connectivityScore(l.USBCPorts, l.USBAPorts, l.HDMIPorts),
		FeatWeight:         l.WeightKg,
	}
}

// gpuScore folds the GPU class ordinal and VRAM into a single 0-10 score.
func gpuScore(gpuClass string, vramGB float64) float64 {
	var base float64
	switch strings.ToLower(gpuClass) {
	case domain.GPUClassIntegrated:
		base = 1.0
	case domain.GPUClassHybrid:
		base = 3.0
	case domain.GPUClassDedicated:
		base = 5.0
	}

	score := base + vramGB*0.5
	if score > 10 {
		score = 10
	}
	return score
}

// displayQualityScore folds resolution, panel type and refresh rate into a
// single 0-10 score.
func displayQualityScore(resolution, panelType string, refreshHz float64) float64 {
	pixels := parseResolutionPixels(resolution)

	var resScore float64
	switch {
	case pixels >= 3840*2160:
		resScore = 4.0
	case pixels >= 2560*1440:
		resScore = 3.0
	case pixels >= 1920*1080:
		resScore = 2.0
	default:
		resScore = 1.0
	}

	var panelScore float64
	switch strings.ToUpper(panelType) {
	case "OLED":
		panelScore = 3.0
	case "IPS":
		panelScore = 2.0
	case "VA":
		panelScore = 1.5
	default:
		panelScore = 1.0
	}

	var refreshScore float64
	switch {
	case refreshHz >= 144:
		refreshScore = 3.0
	case refreshHz >= 90:
		refreshScore = 2.0
	default:
		refreshScore = 1.0
	}

	score := resScore + panelScore + refreshScore
	if score > 10 {
		score = 10
	}
	return score
}

// parseResolutionPixels parses "1920x1080" style strings; malformed
// resolutions default to FHD.
func parseResolutionPixels(resolution string) int {
	parts := strings.SplitN(strings.ToLower(resolution), "x", 2)
	if len(parts) == 2 {
		w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
		h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return w * h
		}
	}
	return 1920 * 1080
}

// portabilityScore maps weight (1-4 kg) and thickness (10-30 mm) into [0,1];
// lighter and thinner scores higher.
func portabilityScore(weightKg, thicknessMM float64) float64 {
	if weightKg <= 0 || thicknessMM <= 0 {
		return 0.5
	}

	weightScore := clamp01((4.0 - weightKg) / 3.0)
	thicknessScore := clamp01((30.0 - thicknessMM) / 20.0)

	return (weightScore + thicknessScore) / 2.0
}

// batteryScore maps capacity clipped to 40-100 Wh into [0,1].
func batteryScore(batteryWhr float64) float64 {
	if batteryWhr < 40 {
		batteryWhr = 40
	}
	if batteryWhr > 100 {
		batteryWhr = 100
	}
	return (batteryWhr - 40.0) / 60.0
}

func connectivityScore(usbC, usbA, hdmi int) float64 {
	return clamp01(float64(usbC)*0.4 + float64(usbA)*0.3 + float64(hdmi)*0.3)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
