package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// Raw marks markup that is already safe. It is inserted without escaping.
func Raw(markup string) Fragment {
	return func(string) (string, error) {
		return markup, nil
	}
}

// Sanitized inserts untrusted markup after cleaning it with a user-generated
// content policy: formatting, links and images survive, scripts and event
// handlers do not.
func Sanitized(markup string) Fragment {
	return SanitizedWith(defaultSanitizer(), markup)
}

// SanitizedWith cleans markup with the given policy. A nil policy falls back to
// the strict policy, which strips every element.
func SanitizedWith(policy *bluemonday.Policy, markup string) Fragment {
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}
	return func(string) (string, error) {
		trimmed := strings.TrimSpace(markup)
		if trimmed == "" {
			return "", nil
		}
		return policy.Sanitize(trimmed), nil
	}
}

func defaultSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		ugcPolicy = policy
	})
	return ugcPolicy
}
