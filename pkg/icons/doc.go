// Package icons holds the runtime-overridable mapping of semantic icon names
// to image URLs consumed by every signature template.
//
// A Registry starts with hardcoded public fallback URLs and can be updated at
// runtime through partial merges, so a lazily-resolving asset host can swap
// icons in without re-initializing anything. Renderers must take a fresh
// Snapshot on every render call rather than caching the set.
//
// # Usage
//
//	reg := icons.NewRegistry()
//	set := reg.Snapshot()          // value copy, safe to read
//	reg.Merge(icons.Set{LinkedIn: "https://cdn.example/li.png"})
//
// The Resolver probes candidate URLs from an asset host bucket-by-bucket and
// merges each icon independently as soon as one loads:
//
//	res := icons.NewResolver(reg, source, icons.ResolverConfig{Bucket: "icons"})
//	res.Resolve(ctx)
package icons
