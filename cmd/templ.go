package cmd

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`

const DESCRIPTION = `
NoDoze keeps your machine awake by holding a power assertion for as
long as it runs and by pressing a harmless F13 key at a fixed cadence
during scheduled sessions. It runs one session immediately on launch,
then schedules future sessions on selected weekdays with a random
start inside a daily window and a random duration within bounds.
`

const RunDescription = `nodoze run - start the keepalive scheduler in the foreground

The first session starts immediately and lasts a random number of
minutes between the configured bounds. Afterwards, sessions start at a
random instant inside the daily start window on allowed weekdays.

Controls (terminal must have focus):
   E   end the current session early (no-lock stays active)
   Q   quit`
