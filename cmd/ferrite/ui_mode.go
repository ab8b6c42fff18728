package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of --ui; it implements pflag.Value so bad input is
// rejected while flags are parsed.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func (m *uiMode) String() string {
	if *m == "" {
		return string(uiModeAuto)
	}
	return string(*m)
}

func (m *uiMode) Set(value string) error {
	switch v := uiMode(strings.ToLower(strings.TrimSpace(value))); v {
	case "":
		*m = uiModeAuto
	case uiModeAuto, uiModeOn, uiModeOff:
		*m = v
	default:
		return fmt.Errorf("expected auto|on|off, got %q", value)
	}
	return nil
}

func (*uiMode) Type() string { return "mode" }

// useTUI: в режиме auto интерфейс только для терминала и без --quiet.
func (m uiMode) useTUI(quiet bool) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return !quiet && isTerminal(os.Stderr)
}
