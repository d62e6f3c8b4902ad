package cmd

import "github.com/urfave/cli"

// Default configuration values
const (
	DEF_WINDOW_START  = "08:30"
	DEF_WINDOW_END    = "10:00"
	DEF_DAYS_OF_WEEK  = "Mon,Tue,Wed,Thu,Fri"
	DEF_MIN_MINUTES   = 240
	DEF_MAX_MINUTES   = 480
	DEF_INTERVAL_SECS = 60
	DEF_PROGRESS_TICK = 1
)

var (
	windowStart  string
	windowEnd    string
	daysOfWeek   string
	minMinutes   int
	maxMinutes   int
	intervalSecs int
	progressTick int
	quiet        bool
)

var runFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "start-window-start, b",
		Usage:       "earliest daily clock time a session may start (HH:MM or HH:MM:SS)",
		EnvVar:      "NODOZE_WINDOW_START",
		Value:       DEF_WINDOW_START,
		Destination: &windowStart,
	},
	cli.StringFlag{
		Name:        "start-window-end, e",
		Usage:       "latest daily clock time a session may start",
		EnvVar:      "NODOZE_WINDOW_END",
		Value:       DEF_WINDOW_END,
		Destination: &windowEnd,
	},
	cli.StringFlag{
		Name:        "days-of-week, d",
		Usage:       "comma-separated weekdays eligible for scheduled sessions",
		EnvVar:      "NODOZE_DAYS",
		Value:       DEF_DAYS_OF_WEEK,
		Destination: &daysOfWeek,
	},
	cli.IntFlag{
		Name:        "min-duration-minutes, m",
		Usage:       "lower bound of the random session duration",
		EnvVar:      "NODOZE_MIN_MINUTES",
		Value:       DEF_MIN_MINUTES,
		Destination: &minMinutes,
	},
	cli.IntFlag{
		Name:        "max-duration-minutes, M",
		Usage:       "upper bound of the random session duration",
		EnvVar:      "NODOZE_MAX_MINUTES",
		Value:       DEF_MAX_MINUTES,
		Destination: &maxMinutes,
	},
	cli.IntFlag{
		Name:        "interval-seconds, i",
		Usage:       "seconds between keepalive keypresses during a session",
		EnvVar:      "NODOZE_INTERVAL",
		Value:       DEF_INTERVAL_SECS,
		Destination: &intervalSecs,
	},
	cli.IntFlag{
		Name:        "progress-tick-seconds, t",
		Usage:       "how often to refresh the progress display",
		EnvVar:      "NODOZE_PROGRESS_TICK",
		Value:       DEF_PROGRESS_TICK,
		Destination: &progressTick,
	},
	cli.BoolFlag{
		Name:        "quiet, q",
		Usage:       "log session events instead of drawing progress bars",
		EnvVar:      "NODOZE_QUIET",
		Destination: &quiet,
	},
}
