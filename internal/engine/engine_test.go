package engine_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bisko/internal/bisko"
	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/influence"
	"github.com/rshade/bisko/internal/refdata"
)

func loadRegion(t *testing.T) *influence.Document {
	t.Helper()
	doc, err := influence.Load(filepath.Join("testdata", "region.yaml"))
	require.NoError(t, err)
	return doc
}

func runRegion(t *testing.T, opts engine.Options) *engine.Result {
	t.Helper()
	doc := loadRegion(t)
	res, err := engine.Run(context.Background(), doc, engine.Lookup(doc, nil), opts)
	require.NoError(t, err)
	require.NotNil(t, res.Bisko)
	return res
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	parallel := runRegion(t, engine.Options{})
	sequential := runRegion(t, engine.Options{Sequential: true})

	assert.Equal(t, sequential.Bisko, parallel.Bisko)
	assert.NotEqual(t, sequential.RunID, parallel.RunID)
}

func TestRun_MatchesCalculate(t *testing.T) {
	doc := loadRegion(t)
	want, err := bisko.Calculate(doc.Balance, engine.Lookup(doc, nil))
	require.NoError(t, err)

	res := runRegion(t, engine.Options{})
	assert.Equal(t, want, res.Bisko)
}

func TestRun_Metadata(t *testing.T) {
	res := runRegion(t, engine.Options{})

	assert.Equal(t, "03159016 Göttingen", res.Region)
	assert.Equal(t, 2018, res.Year)
	assert.Len(t, res.RunID, 26)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestRun_NationwideTotals(t *testing.T) {
	b := runRegion(t, engine.Options{}).Bisko

	combustion := b.PrivateResidences.Total.Energy + b.Businesses.Total.Energy +
		b.Transport.Total.Energy + b.Industry.Total.Energy
	assert.InDelta(t, combustion, b.Total.Energy, 1e-9)

	pb := b.PrivateResidences.Total.CO2ePb + b.Businesses.Total.CO2ePb +
		b.Transport.Total.CO2ePb + b.Industry.Total.CO2ePb +
		b.Agriculture.Total.CO2ePb + b.LULUCF.Total.CO2ePb
	assert.InDelta(t, pb, b.Total.CO2ePb, 1e-9)

	assert.InDelta(t, 50+70, b.CommunalFacilities.Energy, 1e-9)
	assert.InDelta(t, b.Transport.Total.Energy*0.5/b.Total.Energy, b.Quality, 1e-12)
}

func TestRun_LookupFailureAborts(t *testing.T) {
	for _, opts := range []engine.Options{{}, {Sequential: true}} {
		doc := loadRegion(t)
		delete(doc.Facts, bisko.FactDieselTankWheel)

		res, err := engine.Run(context.Background(), doc, engine.Lookup(doc, nil), opts)
		require.Error(t, err)
		assert.Nil(t, res)

		var notFound *refdata.RowNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, bisko.FactDieselTankWheel, notFound.KeyValue)
		assert.ErrorIs(t, err, refdata.ErrLookup)
		assert.Contains(t, err.Error(), "03159016")
	}
}

func TestRun_TablesBehindDocument(t *testing.T) {
	doc := loadRegion(t)
	doc.Facts = nil
	doc.Assumptions = nil

	base := refdata.MapLookup{
		Facts: map[string]float64{
			bisko.FactPetrolTankWheel:      0.26,
			bisko.FactDieselTankWheel:      0.27,
			bisko.FactJetFuelTankWheel:     0.26,
			bisko.FactLPGTankWheel:         0.24,
			bisko.FactCNGTankWheel:         0.2,
			bisko.FactElectricityTankWheel: 0.4,
		},
		Assumptions: map[string]float64{
			bisko.AssBioethanolTankWheel: 0,
			bisko.AssBiodieselTankWheel:  0,
			bisko.AssBiogasTankWheel:     0,
		},
	}

	res, err := engine.Run(context.Background(), doc, engine.Lookup(doc, base), engine.Options{})
	require.NoError(t, err)
	assert.Equal(t, runRegion(t, engine.Options{}).Bisko, res.Bisko)

	_, err = engine.Run(context.Background(), doc, engine.Lookup(doc, nil), engine.Options{})
	assert.ErrorIs(t, err, refdata.ErrLookup)
}

func TestRun_Errors(t *testing.T) {
	_, err := engine.Run(context.Background(), nil, nil, engine.Options{})
	assert.ErrorIs(t, err, engine.ErrNilDocument)

	doc := loadRegion(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, opts := range []engine.Options{{}, {Sequential: true}} {
		_, err = engine.Run(ctx, doc, engine.Lookup(doc, nil), opts)
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	}
}
