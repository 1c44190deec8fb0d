package influence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
schema_version: "1.2.0"
ags: "03159016"
name: Göttingen
year: 2018
r18:
  s_petrol: {energy: 10, CO2e_total: 3}
  p_buildings_area_m2_com: {energy: 90}
  s_unknown_row: {energy: 1}
f18:
  d: {energy: 100}
  d_r: {energy: 25}
  p_petrol: {CO2e_production_based: 40}
h18:
  d: {energy: 100}
  a_t: {energy: 10}
  p_opetpro: {CO2e_combustion_based: 9, CO2e_production_based: 2}
facts:
  Fact_T_S_petrol_EmFa_tank_wheel_2018: 0.26
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "03159016 Göttingen", doc.Region())
	assert.Equal(t, 2018, doc.Year)
	assert.Equal(t, Figures{Energy: 10, CO2eTotal: 3}, doc.Residences.Petrol)
	assert.Equal(t, 90.0, doc.Residences.CommunalBuildings.Energy)
	assert.Equal(t, 100.0, doc.Fuels.Total.Energy)
	assert.Equal(t, 25.0, doc.Fuels.Residences.Energy)
	assert.Equal(t, 40.0, doc.Fuels.Petrol.CO2eProductionBased)
	assert.Equal(t, 10.0, doc.Heat.OtherTransport.Energy)
	assert.Equal(t, 9.0, doc.Heat.OtherPetroleum.CO2eCombustionBased)
	assert.Equal(t, 0.26, doc.Facts["Fact_T_S_petrol_EmFa_tank_wheel_2018"])
	assert.Zero(t, doc.Business.Gas.Energy)
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(`{"schema_version": "1.0.0", "e18": {"d": {"energy": 200}, "p": {"CO2e_total": 1000}}}`))
	require.NoError(t, err)
	assert.Equal(t, 200.0, doc.Electricity.Total.Energy)
	assert.Equal(t, 1000.0, doc.Electricity.Production.CO2eTotal)
	assert.Equal(t, "unknown", doc.Region())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmptyDocument},
		{name: "missing version", input: "ags: x\n", wantErr: ErrMissingSchemaVersion},
		{name: "newer major", input: "schema_version: 2.0.0\n", wantErr: ErrUnsupportedSchema},
		{name: "not a version", input: "schema_version: latest\n", wantErr: ErrUnsupportedSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("non-finite values", func(t *testing.T) {
		_, err := Parse([]byte(`schema_version: "1.0.0"
h18:
  d: {energy: .nan}
t18:
  s_petrol: {CO2e_combustion_based: -.inf}
facts:
  Fact_b: .inf
  Fact_a: 1
`))
		require.ErrorIs(t, err, ErrNonFinite)
		assert.Equal(t,
			"input document holds non-finite values: t18.s_petrol.CO2e_combustion_based, h18.d.energy, facts.Fact_b",
			err.Error())
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Parse([]byte("schema_version: [1.0\n"))
		assert.ErrorContains(t, err, "parsing input document")
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "03159016", doc.AGS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading input document")
}
