package config

// Template is written by `stagetimer config init`.
const Template = `# stagetimer configuration file
#
# Every key can be overridden with an environment variable:
# timer.duration -> STAGETIMER_TIMER_DURATION

timer:
  # Countdown start; reset restores this value.
  duration: 18m
  # Turns orange at or below this much remaining time.
  warning: 5m
  # Turns red and pulses at or below this much remaining time.
  danger: 1m
  # Ring the terminal bell once at 00:00.
  bell: false

appearance:
  # Initial swatch, see "stagetimer palette".
  color: midnight
  # TUI theme: default | high-contrast
  theme: default

tui:
  # Start on the alternate screen (toggle with "f").
  fullscreen: true
  # Enable mouse clicks on the timer and buttons.
  mouse: true

logging:
  level: info
  # JSON log lines are appended here while the timer runs.
  file: ""
`
