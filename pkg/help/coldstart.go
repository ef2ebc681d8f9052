package help

const ColdstartYAML = `# liana Quick Start

inputs:
  file: "Saved analytics page, HTML or plain text"
  stdin: "Pass --input - and pipe the page in"
  frames: "Comma-separated extra documents, e.g. saved iframe dumps"

output_formats:
  json: "Indented JSON to stdout (default)"
  yaml: "YAML to stdout"

commands:
  basic_report: |
    liana report --input analytics.html

  report_from_stdin: |
    pbpaste | liana report --input -

  report_with_frames: |
    liana report --input main.html --frames frame1.html,frame2.html

  custom_labels: |
    liana report --input analytics.html --labels labels.yaml

  store_run: |
    liana report --input analytics.html --store

  list_runs: |
    liana db runs

  show_run: |
    liana db show 3

  trend_latest_run: |
    liana trend --metric likes

  trend_direct_series: |
    liana trend --series "10,12,11,1000,9"

  csv_export: |
    liana trend --metric all --csv trend.csv

run_system:
  - "Runs tracked in SQLite database next to the binary"
  - "Auto-incrementing run IDs (1, 2, 3...)"
  - "Use 'liana db runs' to list runs"
  - "Use 'liana db show <id>' for the stored report"
  - "Trend commands default to the latest run"

db_commands:
  runs: "List stored runs with stats"
  show_id: "Print the stored report for a run"
  init: "Initialize database schema"

label_config:
  - "labels.yaml overrides the built-in bilingual label table"
  - "Each entry: name, pattern (regex), strategy (max|first|small_int)"
  - "small_int takes an optional threshold (default 100000)"
`
