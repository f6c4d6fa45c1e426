// Package config loads runtime configuration for the orbit client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML file, selected with --config.
//  3. Environment: ORBIT_API_URL, ORBIT_LOG_FILE, ORBIT_LOG_LEVEL.
//  4. Command-line flags, applied by cmd/orbit after Load returns.
//
// # YAML schema
//
//	api_url: http://192.168.56.1:3000
//	log_file: /home/me/.cache/orbit/orbit.log
//	log_level: info
//	request_timeout: 30s
//
// The backend address is the only setting the session flow depends on; the
// rest tune logging and how long a submission may hang.
package config
