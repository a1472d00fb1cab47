package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/wirelight/internal/config"
)

// newLogger builds the CLI logger. With format "auto" a terminal gets the
// coloured text formatter and anything else gets logfmt.
func newLogger(cfg config.LogConfig, out *os.File) (*log.Logger, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = lvl
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "wirelight",
		Level:           level,
	})

	switch cfg.Format {
	case "text":
		logger.SetFormatter(log.TextFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "", "auto":
		if !term.IsTerminal(int(out.Fd())) {
			logger.SetFormatter(log.LogfmtFormatter)
		}
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	logger.SetStyles(levelStyles())
	return logger, nil
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBU").Faint(true)
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("2"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("3"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERRO").Bold(true).Foreground(lipgloss.Color("1"))
	styles.Prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return styles
}
