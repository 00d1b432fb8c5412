package team

import "context"

// AliasRepository loads alias overrides from an external two-column source.
type AliasRepository interface {
	LoadAliases(ctx context.Context, path string) (map[string]string, error)
}
