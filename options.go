package itemlist

// config holds the functional-options state for an ItemList, in the same
// shape as the teacher's persistent/btree.Option pattern: a private struct
// mutated by Option funcs, never exposed directly.
type config struct {
	traceTopic   string
	cacheEnabled bool
}

func defaultConfig() config {
	return config{
		traceTopic:   "itemlist.core",
		cacheEnabled: true,
	}
}

// Option configures an ItemList at construction time.
type Option func(*config)

// WithTraceTopic sets the tracing.Select topic this ItemList's tracer()
// calls use. Defaults to "itemlist.core".
func WithTraceTopic(topic string) Option {
	return func(c *config) {
		c.traceTopic = topic
	}
}

// WithCacheDisabled turns off the beforeNode memo (§4.2). Useful for tests
// that want to exercise the cold path on every lookup, or for callers whose
// workload is dominated by writes between reads, where the cache would
// never pay for its own upkeep.
func WithCacheDisabled() Option {
	return func(c *config) {
		c.cacheEnabled = false
	}
}
