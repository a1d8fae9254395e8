// Package config provides configuration parsing for reactkit.
//
// The configuration is stored in reactkit.json (or reactkit.yaml) in the
// working directory. This package handles loading, saving, and validating
// configuration.
//
// # Configuration File Structure
//
//	{
//	  "logLevel": "info",
//	  "legacyWrapMarker": false,
//	  "debug": {
//	    "logTriggers": true
//	  },
//	  "inspect": {
//	    "addr": "localhost:7070",
//	    "allowOrigins": ["http://localhost:3000"]
//	  },
//	  "metrics": {
//	    "namespace": "reactkit"
//	  },
//	  "snapshot": {
//	    "driver": "bolt",
//	    "path": ".reactkit/snapshots.db",
//	    "codec": "json"
//	  }
//	}
//
// REACTKIT_LOG_LEVEL and REACTKIT_INSPECT_ADDR override the file.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Inspector:", cfg.Inspect.Addr)
package config
