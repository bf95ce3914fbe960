package recommend

import (
	"math"
	"testing"

	"gulhajiPlaza/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGPUScore(t *testing.T) {
	cases := []struct {
		class string
		vram  float64
		want  float64
	}{
		{domain.GPUClassIntegrated, 0, 1.0},
		{domain.GPUClassHybrid, 4, 5.0},
		{domain.GPUClassDedicated, 8, 9.0},
		// capped at 10
		{domain.GPUClassDedicated, 16, 10.0},
		// unknown class contributes vram only
		{"", 4, 2.0},
	}

	for _, c := range cases {
		if got := gpuScore(c.class, c.vram); !almostEqual(got, c.want) {
			t.Errorf("gpuScore(%q, %v) = %v, want %v", c.class, c.vram, got, c.want)
		}
	}
}

func TestDisplayQualityScore(t *testing.T) {
	cases := []struct {
		resolution string
		panel      string
		refresh    float64
		want       float64
	}{
		{"3840x2160", "OLED", 144, 10.0},
		{"2560x1440", "IPS", 90, 7.0},
		{"1920x1080", "VA", 60, 4.5},
		{"1366x768", "TN", 60, 3.0},
		// malformed resolution defaults to FHD
		{"full hd", "IPS", 60, 5.0},
	}

	for _, c := range cases {
		got := displayQualityScore(c.resolution, c.panel, c.refresh)
		if !almostEqual(got, c.want) {
			t.Errorf("displayQualityScore(%q, %q, %v) = %v, want %v", c.resolution, c.panel, c.refresh, got, c.want)
		}
	}
}

func TestPortabilityScore(t *testing.T) {
	// 1kg and 10mm both score full marks
	if got := portabilityScore(1.0, 10.0); !almostEqual(got, 1.0) {
		t.Errorf("portabilityScore(1, 10) = %v, want 1.0", got)
	}
	// 4kg and 30mm both bottom out
	if got := portabilityScore(4.0, 30.0); !almostEqual(got, 0.0) {
		t.Errorf("portabilityScore(4, 30) = %v, want 0.0", got)
	}
	// missing dimensions fall back to neutral
	if got := portabilityScore(0, 0); !almostEqual(got, 0.5) {
		t.Errorf("portabilityScore(0, 0) = %v, want 0.5", got)
	}
}

func TestBatteryScoreClipsRange(t *testing.T) {
	if got := batteryScore(20); !almostEqual(got, 0) {
		t.Errorf("batteryScore(20) = %v, want 0", got)
	}
	if got := batteryScore(70); !almostEqual(got, 0.5) {
		t.Errorf("batteryScore(70) = %v, want 0.5", got)
	}
	if got := batteryScore(250); !almostEqual(got, 1) {
		t.Errorf("batteryScore(250) = %v, want 1", got)
	}
}

func TestConnectivityScoreIsClamped(t *testing.T) {
	if got := connectivityScore(1, 1, 1); !almostEqual(got, 1.0) {
		t.Errorf("connectivityScore(1,1,1) = %v, want 1.0", got)
	}
	if got := connectivityScore(4, 4, 4); got > 1.0 {
		t.Errorf("connectivityScore(4,4,4) = %v, exceeds 1.0", got)
	}
	if got := connectivityScore(0, 0, 0); !almostEqual(got, 0) {
		t.Errorf("connectivityScore(0,0,0) = %v, want 0", got)
	}
}

func TestBuildFeatureVectorCoversEverySnapshotFeature(t *testing.T) {
	fv := buildFeatureVector(testLaptop(1, "A", nil))

	for _, feat := range snapshotFeatures {
		if _, ok := fv[feat]; !ok {
			t.Errorf("feature vector missing %q", feat)
		}
	}
	if _, ok := fv[FeatPrice]; ok {
		t.Error("price must never enter a feature vector")
	}
}
