// Package singleton turns a constructible type into a lazily initialised
// single-instance accessor.
//
// An accessor is created once, typically as a package-level variable, and
// called wherever the instance is needed:
//
//	var config = singleton.Of[Config]()
//
//	var db = singleton.New(func() (*sql.DB, error) {
//		return sql.Open("sqlite", "app.db")
//	})
//
//	cfg := config()     // *Config, same pointer on every call
//	conn, err := db()   // opened on first call only
//
// Instances are stored in a [Registry] keyed by the identity of the type and
// an optional name ([WithName]). Accessors use the process-wide [Default]
// registry unless bound to another with [WithRegistry].
//
// Construction is lazy and happens at most once per successful
// initialisation: concurrent first callers share a single in-flight call.
// Constructor errors are returned as a [*ConstructionError] and are not
// stored, so a failed construction is retried on the next call. There is no
// way to reset or remove a stored instance.
//
// Attach an [Observer] with [WithObserver] to receive hit, construct, dedup
// and failure events.
package singleton
