package criteria

import (
	"github.com/viant/simdash/service/dao"
)

// FilterByKey reports whether key satisfies every Key parameter; other
// parameters are ignored
func FilterByKey(key string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != dao.KeyParameter {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			if key != actual {
				return false
			}
		case []string:
			matched := false
			for _, candidate := range actual {
				if key == candidate {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}
