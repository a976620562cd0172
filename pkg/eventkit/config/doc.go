/*
Package config provides type-safe configuration extraction from map[string]any.

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values. This
avoids verbose type assertions when reading YAML/JSON structures:

	cfg, err := config.FromFile("eventkit.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	metrics := cfg.Bool("metrics", false)
	backend := cfg.Section("history").String("backend", "memory")

Nested mappings are reached with Section, which always returns a usable
(possibly empty) Config so lookups can be chained without nil checks.

All accessors return the default value if the key is missing or the value
cannot be converted to the requested type.
*/
package config
