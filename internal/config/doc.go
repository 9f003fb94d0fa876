// Package config loads the starter configuration with viper.
//
// Settings come from, in increasing priority: built-in defaults, a
// starter.yaml (or .json/.toml) file, STARTER_* environment variables and
// explicitly set command-line flags.
//
// # Configuration File Structure
//
//	server:
//	  host: localhost
//	  port: 3000
//	  static_dir: static
//	  live_reload: true
//	  shutdown_timeout: 10s
//	render:
//	  lang: en
//	  client_script: /static/app.js
//	log:
//	  level: debug
//	  format: text
//	metrics:
//	  enabled: true
//	  namespace: starter
//	tracing:
//	  enabled: false
//	dev:
//	  watch: [static]
//	  debounce: 100ms
//	export:
//	  dir: dist
//	  s3:
//	    bucket: my-site
//	    prefix: www
//	    region: us-east-1
//
// Nested keys map to environment variables by upper-casing and replacing
// dots with underscores: server.port becomes STARTER_SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Addr())
package config
