package transfer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/state"
	"github.com/viant/simdash/store"
)

func TestSamples(t *testing.T) {
	assert.Equal(t, []string{"seir", "sir"}, Samples())
	for _, name := range Samples() {
		aModel, err := sample(name)
		require.NoError(t, err, name)
		assert.NoError(t, aModel.Validate(), name)
	}
	_, err := sample("missing")
	assert.Error(t, err)
}

func TestService_ImportSample(t *testing.T) {
	aStore := state.NewStore()
	srv := New(aStore, t.TempDir())
	_, err := srv.ImportSample(context.Background(), "sir")
	require.NoError(t, err)

	aModel := store.Select(aStore, state.SelectModel)
	assert.Equal(t, "SIR", aModel.Name)
	assert.Len(t, aModel.Compartments, 3)
	assert.Equal(t, "beta * S * I / N", aModel.Flow("infection").Equation)
	assert.Equal(t, []string{"S", "I", "R", "beta", "gamma", "N"}, aModel.Symbols())
}

func TestService_ImportModel(t *testing.T) {
	dir := t.TempDir()
	jsonURL := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(jsonURL, []byte(`{"kind":"ModelDefinition","name":"Decay","compartments":[{"id":"A","value":"1"}],"flows":[{"id":"out","source":"A","equation":"k*A"}],"definitions":{"constants":[{"name":"k","value":0.1}],"expressions":[]}}`), 0644))
	yamlURL := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(yamlURL, []byte("kind: ModelDefinition\nname: Growth\ncompartments:\n  - id: P\n    value: \"1\"\n"), 0644))
	untaggedURL := filepath.Join(dir, "untagged.yml")
	require.NoError(t, os.WriteFile(untaggedURL, []byte("name: Growth\n"), 0644))
	danglingURL := filepath.Join(dir, "dangling.json")
	require.NoError(t, os.WriteFile(danglingURL, []byte(`{"kind":"ModelDefinition","flows":[{"id":"f","source":"X"}]}`), 0644))

	var testCases = []struct {
		description string
		URL         string
		expectName  string
		expectErr   bool
	}{
		{description: "json", URL: jsonURL, expectName: "Decay"},
		{description: "yaml", URL: yamlURL, expectName: "Growth"},
		{description: "missing kind", URL: untaggedURL, expectErr: true},
		{description: "dangling flow", URL: danglingURL, expectErr: true},
		{description: "missing file", URL: filepath.Join(dir, "none.json"), expectErr: true},
	}
	for _, testCase := range testCases {
		aStore := state.NewStore()
		srv := New(aStore, dir)
		_, err := srv.ImportModel(context.Background(), testCase.URL)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			assert.Empty(t, store.Select(aStore, state.SelectModel).Compartments, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectName, store.Select(aStore, state.SelectModel).Name, testCase.description)
	}
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	aStore := state.NewStore()
	srv := New(aStore, dir)
	defer srv.Attach()()

	_, err := srv.ImportSample(ctx, "sir")
	require.NoError(t, err)
	run := &model.Run{ID: "run-1", Model: store.Select(aStore, state.SelectModel)}
	require.NoError(t, aStore.Dispatch(ctx, actions.Dashboard.AddRun.Create(actions.RunProps{Run: run})))
	require.NoError(t, aStore.Dispatch(ctx, actions.Processing.ModelProcessingSuccess.Create(actions.ProcessingProps{
		ProcessingType: model.ProcessingSimulation,
		RunID:          "run-1",
		Data:           &model.SimulationData{Times: []float64{0, 0.5}, Series: map[string][]float64{"S": {990, 980.5}, "I": {10, 19.5}}},
	})))

	require.NoError(t, aStore.Dispatch(ctx, actions.App.ExportModel.Create()))
	require.NoError(t, aStore.Dispatch(ctx, actions.Dashboard.ExportRunData.Create(actions.IDProps{ID: "run-1"})))
	require.NoError(t, aStore.Dispatch(ctx, actions.Dashboard.ExportRunValues.Create(actions.IDProps{ID: "run-1"})))

	exported, err := os.ReadFile(filepath.Join(dir, "SIR.model.json"))
	require.NoError(t, err)
	aModel, err := model.DecodeDefinition(exported)
	require.NoError(t, err)
	assert.Equal(t, "SIR", aModel.Name)

	runData, err := os.ReadFile(filepath.Join(dir, "run-1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(runData), `"success": true`)

	values, err := os.ReadFile(filepath.Join(dir, "run-1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "time,I,S\n0,10,990\n0.5,19.5,980.5\n", string(values))
}

func TestService_ExportRunValues_Missing(t *testing.T) {
	srv := New(state.NewStore(), t.TempDir())
	_, err := srv.ExportRunValues(context.Background(), state.NewStore().State(), "none")
	assert.Error(t, err)
}
