package domain

import (
	"time"
)

// CREATE TABLE public.laptops (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     brand               TEXT,
//     model_name          TEXT,
//     processor_brand     TEXT,
//     processor_model     TEXT,
//     processor_cores     INT,
//     processor_threads   INT,
//     base_clock_ghz      NUMERIC,
//     boost_clock_ghz     NUMERIC,
//     ram_gb              INT,
//     max_ram_gb          INT,
//     storage_type        TEXT,
//     storage_gb          INT,
//     display_size_inches NUMERIC,
//     display_resolution  TEXT,
//     panel_type          TEXT,
//     refresh_rate_hz     INT,
//     gpu_type            TEXT,
//     gpu_model           TEXT,
//     vram_gb             INT,
//     weight_kg           NUMERIC,
//     thickness_mm        NUMERIC,
//     battery_whr         NUMERIC,
//     usb_c_ports         INT,
//     usb_a_ports         INT,
//     hdmi_ports          INT,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

// GPU class values stored in laptops.gpu_type.
const (
	GPUClassIntegrated = "integrated"
	GPUClassHybrid     = "hybrid"
	GPUClassDedicated  = "dedicated"
)

type Laptop struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand             string    `gorm:"column:brand;type:text" json:"brand"`
	ModelName         string    `gorm:"column:model_name;type:text" json:"model_name"`
	ProcessorBrand    string    `gorm:"column:processor_brand;type:text" json:"processor_brand"`
	ProcessorModel    string    `gorm:"column:processor_model;type:text" json:"processor_model"`
	ProcessorCores    int       `gorm:"column:processor_cores" json:"processor_cores"`
	ProcessorThreads  int       `gorm:"column:processor_threads" json:"processor_threads"`
	BaseClockGHz      float64   `gorm:"column:base_clock_ghz;type:numeric" json:"base_clock_ghz"`
	BoostClockGHz     float64   `gorm:"column:boost_clock_ghz;type:numeric" json:"boost_clock_ghz"`
	RAMGB             int       `gorm:"column:ram_gb" json:"ram_gb"`
	MaxRAMGB          int       `gorm:"column:max_ram_gb" json:"max_ram_gb"`
	StorageType       string    `gorm:"column:storage_type;type:text" json:"storage_type"`
	StorageGB         int       `gorm:"column:storage_gb" json:"storage_gb"`
	DisplaySizeInches float64   `gorm:"column:display_size_inches;type:numeric" json:"display_size_inches"`
	DisplayResolution string    `gorm:"column:display_resolution;type:text" json:"display_resolution"`
	PanelType         string    `gorm:"column:panel_type;type:text" json:"panel_type"`
	RefreshRateHz     int       `gorm:"column:refresh_rate_hz" json:"refresh_rate_hz"`
	GPUType           string    `gorm:"column:gpu_type;type:text" json:"gpu_type"`
	GPUModel          string    `gorm:"column:gpu_model;type:text" json:"gpu_model"`
	VRAMGB            int       `gorm:"column:vram_gb" json:"vram_gb"`
	WeightKg          float64   `gorm:"column:weight_kg;type:numeric" json:"weight_kg"`
	ThicknessMM       float64   `gorm:"column:thickness_mm;type:numeric" json:"thickness_mm"`
	BatteryWhr        float64   `gorm:"column:battery_whr;type:numeric" json:"battery_whr"`
	USBCPorts         int       `gorm:"column:usb_c_ports" json:"usb_c_ports"`
	USBAPorts         int       `gorm:"column:usb_a_ports" json:"usb_a_ports"`
	HDMIPorts         int       `gorm:"column:hdmi_ports" json:"hdmi_ports"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Laptop) TableName() string {
	return "laptops"
}

// VendorOffer is a live price/stock row from one of the plaza vendors.
type VendorOffer struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	LaptopID   uint64    `gorm:"column:laptop_id;not null;index" json:"laptop_id"`
	VendorName string    `gorm:"column:vendor_name;type:text" json:"vendor_name"`
	Price      float64   `gorm:"column:price;type:numeric" json:"price"`
	StockCount int       `gorm:"column:stock_count" json:"stock_count"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VendorOffer) TableName() string {
	return "vendor_offers"
}

// LiveOffer is the best in-stock offer for a laptop at request time.
// Price and stock are never cached in a snapshot.
type LiveOffer struct {
	Price      float64 `json:"price"`
	StockCount int     `json:"stock_count"`
}
