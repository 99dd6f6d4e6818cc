package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/simdash/service/dao"
)

func TestFilterByKey(t *testing.T) {
	var testCases = []struct {
		description string
		key         string
		parameters  []*dao.Parameter
		expect      bool
	}{
		{description: "no parameters", key: "runs", expect: true},
		{description: "single key match", key: "runs", parameters: []*dao.Parameter{dao.NewParameter(dao.KeyParameter, "runs")}, expect: true},
		{description: "single key mismatch", key: "runs", parameters: []*dao.Parameter{dao.NewParameter(dao.KeyParameter, "settings")}, expect: false},
		{description: "key list", key: "runs", parameters: []*dao.Parameter{dao.NewParameter(dao.KeyParameter, "settings", "runs")}, expect: true},
		{description: "other parameter", key: "runs", parameters: []*dao.Parameter{dao.NewParameter("State", "x")}, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, FilterByKey(testCase.key, testCase.parameters), testCase.description)
	}
}
