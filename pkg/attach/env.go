package attach

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// EnvVar is one environment variable forwarded to the adapter process.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ForwardEnv returns the env object's entries in source order. String values
// are forwarded verbatim; anything else as compact JSON text, numbers as
// written. A repeated name keeps its first position and its last value.
func ForwardEnv(cfg Config) []EnvVar {
	envs := []EnvVar{}
	env := cfg.Get(KeyEnv)
	if !env.IsObject() {
		return envs
	}
	index := map[string]int{}
	env.ForEach(func(key, value gjson.Result) bool {
		if i, ok := index[key.Str]; ok {
			envs[i].Value = envValue(value)
			return true
		}
		index[key.Str] = len(envs)
		envs = append(envs, EnvVar{Name: key.Str, Value: envValue(value)})
		return true
	})
	return envs
}

func envValue(value gjson.Result) string {
	if value.Type == gjson.String {
		return value.Str
	}
	return compactJSON(value.Raw)
}

func compactJSON(raw string) string {
	return string(pretty.Ugly([]byte(raw)))
}
