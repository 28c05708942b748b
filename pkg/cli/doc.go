// Package cli implements the ferien command-line tool for German school holidays.
//
// # Overview
//
// ferien answers the same queries as the HTTP API directly from the holiday
// data, embedded in the binary or read from a directory of {year}.json files.
//
// # Commands
//
// years - List the years with data:
//
//	ferien years
//
// holidays - Holidays of a year, optionally of one state:
//
//	ferien holidays 2025 [--states BY,BE] [--type sommerferien] [--from 2025-06-01] [--to 2025-08-31]
//	ferien holidays 2025 NW --fields start,end
//
// current, next, on - Holidays active now, starting within DAYS days, or active on DATE:
//
//	ferien current --states BY
//	ferien next 30
//	ferien on 2025-08-15 --format json
//
// search - Case-insensitive search over name, slug and state code:
//
//	ferien search sommer --year 2025
//
// stats, compare - Derived views:
//
//	ferien stats 2025
//	ferien compare 2024 2025
//
// public-holidays - Public holidays (Feiertage) per state:
//
//	ferien public-holidays 2025 --states BY
//
// serve - Run the HTTP API:
//
//	ferien serve --port 8080 --cache-max-age 3600
//
// # Global Flags
//
//	--data-dir      Directory of {year}.json files (default: embedded data)
//	--log-level     Log level: debug, info, warn, error (default: info)
//	--output, -o    Output file path (default: stdout)
//	--format, -t    Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	LOG_LEVEL                     Logging verbosity
//	FERIEN_DATA_DIR               Same as --data-dir
//	FERIEN_CACHE_MAX_AGE_SECONDS  Same as serve --cache-max-age
//	PORT                          Same as serve --port
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, unavailable data or an empty result
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ferien-api/schulferien/pkg/cli.version=1.0.0'"
package cli
