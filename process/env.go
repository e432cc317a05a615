package process

import (
	"os"
	"sort"
	"strings"
)

// buildEnv constructs the child environment from the overlay and policy.
// With replace=true the overlay is the entire environment. Otherwise the
// overlay is applied on top of the inherited environment, overriding
// keys that collide.
func buildEnv(overlay map[string]string, replace bool) []string {
	if replace {
		return flattenEnv(overlay)
	}
	if len(overlay) == 0 {
		return nil // inherit parent env untouched
	}

	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			merged[kv[:i]] = kv[i+1:]
		}
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return flattenEnv(merged)
}

func flattenEnv(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
