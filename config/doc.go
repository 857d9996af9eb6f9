// Package config loads the generator configuration.
//
// A configuration is YAML; every field is optional and falls back to
// Default():
//
//	output:
//	  kind: files          # files | badger | memory
//	  path: testdata/expected
//	  arma_header: false
//	catalog:
//	  num_elems: [1, 2, 25]
//	  num_rows: [1, 2, 5]
//	  num_cols: [1, 2, 5]
//	drivers: []            # empty: every driver
//	jobs: 1
//	log_level: info
//	metrics_file: ""
//
// Load validates the result; an invalid configuration fails with
// ErrInvalidConfig.
package config
