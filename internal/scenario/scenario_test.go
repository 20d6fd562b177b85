package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFarm() *Scenario {
	return &Scenario{
		Organisation:  "Test Farm",
		Location:      "Nagpur, Maharashtra",
		ReportingYear: "2024-25",
		Sector:        SectorAgriculture,
		Agriculture: &Agriculture{
			AreaHa:         2,
			Crop:           CropGeneral,
			FertilizerNKg:  100,
			DieselL:        50,
			ElectricityKWh: 200,
			LivestockHead:  5,
		},
	}
}

func validPlant() *Scenario {
	return &Scenario{
		Sector:    SectorAlloy,
		BaselineT: 30,
		Alloy: &Alloy{
			SteelProductionT: 10,
			ElectricityKWh:   1000,
		},
	}
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scenario)
		base    func() *Scenario
		wantErr string
	}{
		{name: "valid agriculture", base: validFarm, mutate: func(*Scenario) {}},
		{name: "valid alloy", base: validPlant, mutate: func(*Scenario) {}},
		{
			name: "negative baseline",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.BaselineT = -1
			},
			wantErr: "baseline_t",
		},
		{
			name: "negative diesel",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.Agriculture.DieselL = -10
			},
			wantErr: "diesel_l",
		},
		{
			name: "negative livestock",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.Agriculture.LivestockHead = -1
			},
			wantErr: "livestock_head",
		},
		{
			name: "negative steel production",
			base: validPlant,
			mutate: func(s *Scenario) {
				s.Alloy.SteelProductionT = -5
			},
			wantErr: "steel_production_t",
		},
		{
			name: "unknown sector",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.Sector = "mining"
			},
			wantErr: "unknown sector",
		},
		{
			name: "missing agriculture block",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.Agriculture = nil
			},
			wantErr: "agriculture block is required",
		},
		{
			name: "missing alloy block",
			base: validPlant,
			mutate: func(s *Scenario) {
				s.Alloy = nil
			},
			wantErr: "alloy block is required",
		},
		{
			name: "unknown crop",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.Agriculture.Crop = "Wheat"
			},
			wantErr: "unknown crop",
		},
		{
			name: "rice yield without rice crop",
			base: validFarm,
			mutate: func(s *Scenario) {
				s.Agriculture.RiceYieldT = 3
			},
			wantErr: "rice_yield_t is only valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.base()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateNegativeQuantitySentinel(t *testing.T) {
	s := validFarm()
	s.Agriculture.FertilizerNKg = -1

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestValidateDefaultsEmptyCropToGeneral(t *testing.T) {
	s := validFarm()
	s.Agriculture.Crop = ""

	require.NoError(t, s.Validate())
	assert.Equal(t, CropGeneral, s.Agriculture.Crop)
}

func TestParseSector(t *testing.T) {
	tests := []struct {
		input   string
		want    Sector
		wantErr bool
	}{
		{input: "agriculture", want: SectorAgriculture},
		{input: "Agriculture", want: SectorAgriculture},
		{input: "alloy", want: SectorAlloy},
		{input: "steel", want: SectorAlloy},
		{input: "alloy/steel", want: SectorAlloy},
		{input: "mining", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSector(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayPlaceholders(t *testing.T) {
	s := &Scenario{}
	assert.Equal(t, "Unnamed facility / organisation", s.DisplayOrganisation())
	assert.Equal(t, "Location not specified", s.DisplayLocation())
	assert.Equal(t, "Reporting year not specified", s.DisplayReportingYear())

	s.Organisation = "Acme Steel"
	assert.Equal(t, "Acme Steel", s.DisplayOrganisation())
}

func TestLoadScenarioYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "farm.yaml")
	content := `
organisation: Demo Farm
location: Pune, Maharashtra
reporting_year: "2024-25"
sector: agriculture
baseline_t: 10
agriculture:
  area_ha: 2
  crop: Rice
  rice_yield_t: 5
  fertilizer_n_kg: 100
  diesel_l: 50
  electricity_kwh: 200
  livestock_head: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SectorAgriculture, s.Sector)
	assert.Equal(t, CropRice, s.Agriculture.Crop)
	assert.InDelta(t, 5.0, s.Agriculture.RiceYieldT, 1e-9)
	assert.InDelta(t, 10.0, s.BaselineT, 1e-9)
}

func TestLoadScenarioInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `
sector: agriculture
agriculture:
  diesel_l: -3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
